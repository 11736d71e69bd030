package services

import (
	"testing"
	"time"

	"github.com/PortalCiudadano/Gestiones-Backend/src/dtos"
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// fakeGeocoder answers with fixed coordinates, or nothing at all.
type fakeGeocoder struct {
	coords *dtos.Coordenadas
}

func (f *fakeGeocoder) Resolve(direccion string) *dtos.Coordenadas {
	return f.coords
}

type GestionServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	geocoder *fakeGeocoder
	service  *GestionService

	obras    models.SecretariaModel
	ambiente models.SecretariaModel
	bache    models.TipoGestionModel
	poda     models.TipoGestionModel
}

func (s *GestionServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.geocoder = &fakeGeocoder{}
	s.service = NewGestionService(s.db, s.geocoder)

	s.obras = models.SecretariaModel{Name: "Obras Públicas"}
	s.ambiente = models.SecretariaModel{Name: "Medio Ambiente"}
	s.Require().NoError(s.db.Create(&s.obras).Error)
	s.Require().NoError(s.db.Create(&s.ambiente).Error)

	s.bache = models.TipoGestionModel{Name: "Bache en calzada", SecretariaID: s.obras.Id}
	s.poda = models.TipoGestionModel{Name: "Poda de árbol", SecretariaID: s.ambiente.Id}
	s.Require().NoError(s.db.Create(&s.bache).Error)
	s.Require().NoError(s.db.Create(&s.poda).Error)

	s.Require().NoError(s.db.Create(&models.UserModel{Username: "alice", Password: "x"}).Error)
	s.Require().NoError(s.db.Create(&models.UserModel{Username: "bob", Password: "x"}).Error)
}

func TestGestionServiceSuite(t *testing.T) {
	suite.Run(t, new(GestionServiceSuite))
}

func (s *GestionServiceSuite) draft() *dtos.CreateGestionDTO {
	return &dtos.CreateGestionDTO{
		Titulo:        "Bache",
		Descripcion:   "Bache grande en Calle Principal",
		Direccion:     "Calle Principal 123",
		SecretariaID:  s.obras.Id,
		TipoGestionID: s.bache.Id,
	}
}

func (s *GestionServiceSuite) rowCount() int64 {
	var count int64
	s.db.Model(&models.GestionModel{}).Count(&count)
	return count
}

func (s *GestionServiceSuite) TestCreateGestion() {
	s.Run("persists a valid draft with default estado", func() {
		before := time.Now().Add(-time.Second)
		gestion, err := s.service.CreateGestion(s.draft(), "alice")
		s.Require().NoError(err)
		s.Equal(models.EstadoPendiente, gestion.Estado)
		s.NotZero(gestion.Id)
		s.False(gestion.CreatedAt.Before(before))
	})

	s.Run("rejects an empty titulo and persists nothing", func() {
		count := s.rowCount()
		draft := s.draft()
		draft.Titulo = "   "
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrTituloObligatorio)
		s.Equal(count, s.rowCount())
	})

	s.Run("rejects an empty descripcion", func() {
		draft := s.draft()
		draft.Descripcion = ""
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrDescripcionObligatoria)
	})

	s.Run("rejects an empty direccion", func() {
		draft := s.draft()
		draft.Direccion = ""
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrDireccionObligatoria)
	})

	s.Run("rejects a missing tipo", func() {
		draft := s.draft()
		draft.TipoGestionID = 0
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrTipoObligatorio)
	})

	s.Run("rejects an unknown estado", func() {
		draft := s.draft()
		draft.Estado = "Archivada"
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrEstadoInvalido)
	})

	s.Run("rejects a tipo that belongs to another secretaría", func() {
		draft := s.draft()
		draft.TipoGestionID = s.poda.Id // pertenece a Medio Ambiente
		_, err := s.service.CreateGestion(draft, "alice")
		s.ErrorIs(err, ErrTipoNoCorresponde)
	})
}

func (s *GestionServiceSuite) TestGeocodingEnrichment() {
	s.Run("stores both coordinates when the lookup succeeds", func() {
		s.geocoder.coords = &dtos.Coordenadas{Latitud: -34.6, Longitud: -58.4}
		gestion, err := s.service.CreateGestion(s.draft(), "alice")
		s.Require().NoError(err)
		s.Require().NotNil(gestion.Latitud)
		s.Require().NotNil(gestion.Longitud)
		s.InDelta(-34.6, *gestion.Latitud, 0.001)
		s.InDelta(-58.4, *gestion.Longitud, 0.001)
	})

	s.Run("saves the gestión with no coordinates when the lookup fails", func() {
		s.geocoder.coords = nil
		gestion, err := s.service.CreateGestion(s.draft(), "alice")
		s.Require().NoError(err)
		s.Nil(gestion.Latitud)
		s.Nil(gestion.Longitud)
	})
}

func (s *GestionServiceSuite) TestGetGestionesByUsername() {
	first, err := s.service.CreateGestion(s.draft(), "alice")
	s.Require().NoError(err)

	second := s.draft()
	second.Titulo = "Bache nuevo"
	created, err := s.service.CreateGestion(second, "alice")
	s.Require().NoError(err)

	// Push the first record an hour into the past so ordering is observable
	s.Require().NoError(s.db.Model(&models.GestionModel{}).
		Where("id = ?", first.Id).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	bobDraft := s.draft()
	bobDraft.Titulo = "Gestión de bob"
	_, err = s.service.CreateGestion(bobDraft, "bob")
	s.Require().NoError(err)

	s.Run("returns only the owner's records, newest first", func() {
		gestiones, err := s.service.GetGestionesByUsername("alice")
		s.Require().NoError(err)
		s.Require().Len(gestiones, 2)
		s.Equal(created.Id, gestiones[0].ID)
		s.Equal(first.Id, gestiones[1].ID)
		s.True(gestiones[0].FechaCreacion.After(gestiones[1].FechaCreacion))
		for _, gestion := range gestiones {
			s.NotEqual("Gestión de bob", gestion.Titulo)
		}
	})

	s.Run("denormalizes catalog names", func() {
		gestiones, err := s.service.GetGestionesByUsername("alice")
		s.Require().NoError(err)
		s.Require().NotNil(gestiones[0].SecretariaName)
		s.Equal("Obras Públicas", *gestiones[0].SecretariaName)
		s.Require().NotNil(gestiones[0].TipoGestion)
		s.Equal("Bache en calzada", *gestiones[0].TipoGestion)
	})

	s.Run("returns an empty slice for a user with no records", func() {
		s.Require().NoError(s.db.Create(&models.UserModel{Username: "carol", Password: "x"}).Error)
		gestiones, err := s.service.GetGestionesByUsername("carol")
		s.Require().NoError(err)
		s.Empty(gestiones)
	})
}

func (s *GestionServiceSuite) TestGetGestionByID() {
	gestion, err := s.service.CreateGestion(s.draft(), "alice")
	s.Require().NoError(err)

	s.Run("returns the record to its owner", func() {
		found, err := s.service.GetGestionByID(gestion.Id, "alice")
		s.Require().NoError(err)
		s.Equal(gestion.Id, found.Id)
	})

	s.Run("hides the record from other users", func() {
		_, err := s.service.GetGestionByID(gestion.Id, "bob")
		s.ErrorIs(err, ErrGestionNoEncontrada)
	})
}

func (s *GestionServiceSuite) TestExportGestionesExcel() {
	_, err := s.service.CreateGestion(s.draft(), "alice")
	s.Require().NoError(err)

	f, err := s.service.ExportGestionesExcel("alice")
	s.Require().NoError(err)

	rows, err := f.GetRows("Mis Gestiones")
	s.Require().NoError(err)
	s.Require().Len(rows, 2) // header + one gestión
	s.Equal("Título", rows[0][1])
	s.Equal("Bache", rows[1][1])
}
