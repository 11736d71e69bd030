package services

import (
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"gorm.io/gorm"
)

type TipoGestionService struct {
	db *gorm.DB
}

// NewTipoGestionService creates a new instance of TipoGestionService
func NewTipoGestionService(db *gorm.DB) *TipoGestionService {
	return &TipoGestionService{db: db}
}

// GetTiposBySecretaria retrieves the tipos de gestión that belong to one secretaría
func (s *TipoGestionService) GetTiposBySecretaria(secretariaID int) ([]models.TipoGestionModel, error) {
	var tipos []models.TipoGestionModel
	result := s.db.Where("secretaria_id = ?", secretariaID).Order("name").Find(&tipos)
	if result.Error != nil {
		return nil, result.Error
	}
	return tipos, nil
}

// GetTipoGestionByID retrieves a TipoGestion record by ID
func (s *TipoGestionService) GetTipoGestionByID(id int) (*models.TipoGestionModel, error) {
	var tipo models.TipoGestionModel
	result := s.db.First(&tipo, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tipo, nil
}
