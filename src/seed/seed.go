package seed

import (
	"log"

	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"gorm.io/gorm"
)

// Catálogo fijo de secretarías y sus tipos de gestión
var catalogo = map[string][]string{
	"Obras Públicas": {
		"Bache en calzada",
		"Vereda rota",
		"Luminaria apagada",
	},
	"Medio Ambiente": {
		"Poda de árbol",
		"Microbasural",
		"Ruidos molestos",
	},
	"Tránsito": {
		"Semáforo fuera de servicio",
		"Señalización faltante",
	},
	"Servicios Sociales": {
		"Solicitud de asistencia",
		"Consulta de trámite",
	},
}

// Seed inserts the default catalog of secretarías and tipos de gestión the
// first time the portal starts. It is safe to call on every startup: if any
// secretaría already exists the catalog is considered seeded and nothing is
// inserted.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.SecretariaModel{}).Count(&count).Error; err != nil {
		log.Printf("Failed to inspect catalog: %v\n", err)
		return
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return
	}

	log.Println("Seeding secretarías and tipos de gestión...")
	created := 0
	for name, tipos := range catalogo {
		secretaria := models.SecretariaModel{Name: name}
		if err := db.Create(&secretaria).Error; err != nil {
			log.Printf("Failed to create secretaría %q: %v\n", name, err)
			continue
		}
		for _, tipoName := range tipos {
			tipo := models.TipoGestionModel{
				Name:         tipoName,
				SecretariaID: secretaria.Id,
			}
			if err := db.Create(&tipo).Error; err != nil {
				log.Printf("Failed to create tipo %q: %v\n", tipoName, err)
				continue
			}
			created++
		}
		log.Printf("Secretaría %q created with %d tipos\n", name, len(tipos))
	}
	log.Printf("Finished seeding catalog (%d tipos)\n", created)
}
