package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PortalCiudadano/Gestiones-Backend/src/dtos"
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrTituloObligatorio      = errors.New("el título es obligatorio")
	ErrDescripcionObligatoria = errors.New("la descripción es obligatoria")
	ErrDireccionObligatoria   = errors.New("la dirección es obligatoria")
	ErrTipoObligatorio        = errors.New("debe seleccionar un tipo de gestión")
	ErrEstadoInvalido         = errors.New("estado de gestión desconocido")
	ErrTipoNoCorresponde      = errors.New("el tipo de gestión no pertenece a la secretaría seleccionada")
	ErrGestionNoEncontrada    = errors.New("gestión no encontrada")
)

type GestionService struct {
	db       *gorm.DB
	geocoder Geocoder
}

// NewGestionService creates a new instance of GestionService
func NewGestionService(db *gorm.DB, geocoder Geocoder) *GestionService {
	return &GestionService{db: db, geocoder: geocoder}
}

// CreateGestion validates the form draft, geocodes the address best effort
// and persists the gestión for the given owner. Records are immutable once
// created; there is no update or delete.
func (s *GestionService) CreateGestion(draft *dtos.CreateGestionDTO, username string) (*models.GestionModel, error) {
	if strings.TrimSpace(draft.Titulo) == "" {
		return nil, ErrTituloObligatorio
	}
	if strings.TrimSpace(draft.Descripcion) == "" {
		return nil, ErrDescripcionObligatoria
	}
	if strings.TrimSpace(draft.Direccion) == "" {
		return nil, ErrDireccionObligatoria
	}
	if draft.TipoGestionID == 0 {
		return nil, ErrTipoObligatorio
	}

	estado := draft.Estado
	if estado == "" {
		estado = models.EstadoPendiente
	}
	switch estado {
	case models.EstadoPendiente, models.EstadoEnProceso, models.EstadoCompletada:
	default:
		return nil, ErrEstadoInvalido
	}

	var owner models.UserModel
	if err := s.db.Where("username = ?", username).First(&owner).Error; err != nil {
		return nil, err
	}

	// El tipo elegido debe pertenecer a la secretaría elegida
	var tipo models.TipoGestionModel
	if err := s.db.First(&tipo, draft.TipoGestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoObligatorio
		}
		return nil, err
	}
	if draft.SecretariaID != 0 && tipo.SecretariaID != draft.SecretariaID {
		return nil, ErrTipoNoCorresponde
	}
	secretariaID := tipo.SecretariaID

	direccion := strings.TrimSpace(draft.Direccion)
	gestion := models.GestionModel{
		Titulo:        strings.TrimSpace(draft.Titulo),
		Descripcion:   strings.TrimSpace(draft.Descripcion),
		Estado:        estado,
		UsuarioID:     owner.Id,
		Direccion:     &direccion,
		SecretariaID:  &secretariaID,
		TipoGestionID: &tipo.Id,
	}

	// Best effort: a failed lookup leaves both coordinates empty and the
	// gestión is saved anyway.
	if coords := s.geocoder.Resolve(direccion); coords != nil {
		gestion.Latitud = &coords.Latitud
		gestion.Longitud = &coords.Longitud
	}

	if err := s.db.Create(&gestion).Error; err != nil {
		return nil, err
	}
	return &gestion, nil
}

// GetGestionesByUsername retrieves the user's own gestiones, newest first,
// denormalized with the catalog names for display.
func (s *GestionService) GetGestionesByUsername(username string) ([]dtos.GestionSummaryDTO, error) {
	var gestiones []models.GestionModel
	err := s.db.
		Select("gestiones.*").
		Preload("Secretaria").
		Preload("TipoGestion").
		Joins("JOIN usuarios ON usuarios.id = gestiones.usuario_id").
		Where("usuarios.username = ?", username).
		Order("gestiones.created_at DESC, gestiones.id DESC").
		Find(&gestiones).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.GestionSummaryDTO, 0, len(gestiones))
	for _, gestion := range gestiones {
		summary := dtos.GestionSummaryDTO{
			ID:            gestion.Id,
			Titulo:        gestion.Titulo,
			Descripcion:   gestion.Descripcion,
			Estado:        gestion.Estado,
			Direccion:     gestion.Direccion,
			Latitud:       gestion.Latitud,
			Longitud:      gestion.Longitud,
			FechaCreacion: gestion.CreatedAt,
		}
		if gestion.Secretaria != nil {
			summary.SecretariaName = &gestion.Secretaria.Name
		}
		if gestion.TipoGestion != nil {
			summary.TipoGestion = &gestion.TipoGestion.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetGestionByID retrieves one gestión, scoped to its owner
func (s *GestionService) GetGestionByID(id int, username string) (*models.GestionModel, error) {
	var gestion models.GestionModel
	err := s.db.
		Select("gestiones.*").
		Preload("Secretaria").
		Preload("TipoGestion").
		Joins("JOIN usuarios ON usuarios.id = gestiones.usuario_id").
		Where("gestiones.id = ? AND usuarios.username = ?", id, username).
		First(&gestion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGestionNoEncontrada
		}
		return nil, err
	}
	return &gestion, nil
}

// ExportGestionesExcel builds an xlsx workbook with the user's listing,
// one row per gestión.
func (s *GestionService) ExportGestionesExcel(username string) (*excelize.File, error) {
	gestiones, err := s.GetGestionesByUsername(username)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Mis Gestiones"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Título", "Descripción", "Estado", "Secretaría", "Tipo", "Dirección", "Latitud", "Longitud", "Fecha"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, gestion := range gestiones {
		values := []interface{}{
			gestion.ID,
			gestion.Titulo,
			gestion.Descripcion,
			gestion.Estado,
			stringOrEmpty(gestion.SecretariaName),
			stringOrEmpty(gestion.TipoGestion),
			stringOrEmpty(gestion.Direccion),
			floatOrEmpty(gestion.Latitud),
			floatOrEmpty(gestion.Longitud),
			gestion.FechaCreacion.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	return f, nil
}

// SaveEvidencia persists the metadata of an attached file
func (s *GestionService) SaveEvidencia(evidencia *models.EvidenciaModel) error {
	return s.db.Create(evidencia).Error
}

// GetEvidenciaByGestionID retrieves the most recent attachment of a gestión
func (s *GestionService) GetEvidenciaByGestionID(gestionID int) (*models.EvidenciaModel, error) {
	var evidencia models.EvidenciaModel
	err := s.db.
		Where("gestion_id = ?", gestionID).
		Order("created_at DESC, id DESC").
		First(&evidencia).Error
	if err != nil {
		return nil, err
	}
	return &evidencia, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%f", *f)
}
