package main

import (
	"log"
	"os"

	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Crea la cuenta del operador municipal si todavía no existe.
func main() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "gestiones.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	username := os.Getenv("OPERADOR_USER")
	if username == "" {
		username = "operador"
	}
	password := os.Getenv("OPERADOR_PASSWORD")
	if password == "" {
		log.Fatal("OPERADOR_PASSWORD must be set")
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists\n", username)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User %q created\n", username)
}
