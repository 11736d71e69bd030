package services

import (
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"gorm.io/gorm"
)

type SecretariaService struct {
	db *gorm.DB
}

// NewSecretariaService creates a new instance of SecretariaService
func NewSecretariaService(db *gorm.DB) *SecretariaService {
	return &SecretariaService{db: db}
}

// GetAllSecretarias retrieves all Secretaria records from the database
func (s *SecretariaService) GetAllSecretarias() ([]models.SecretariaModel, error) {
	var secretarias []models.SecretariaModel
	result := s.db.Order("name").Find(&secretarias)
	if result.Error != nil {
		return nil, result.Error
	}
	return secretarias, nil
}

// GetSecretariaByID retrieves a Secretaria record by ID
func (s *SecretariaService) GetSecretariaByID(id int) (*models.SecretariaModel, error) {
	var secretaria models.SecretariaModel
	result := s.db.First(&secretaria, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &secretaria, nil
}
