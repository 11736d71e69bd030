package services

import (
	"fmt"
	"testing"

	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

// newTestDB opens a fresh in-memory database migrated with the portal schema.
// Each call gets its own named shared-cache DB so the connection pool always
// sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:servicestest%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.SecretariaModel{},
		&models.TipoGestionModel{},
		&models.GestionModel{},
		&models.EvidenciaModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
