package main

import (
	"log"
	"os"

	"github.com/PortalCiudadano/Gestiones-Backend/src/db"
	"github.com/PortalCiudadano/Gestiones-Backend/src/middleware"
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"github.com/PortalCiudadano/Gestiones-Backend/src/routes"
	"github.com/PortalCiudadano/Gestiones-Backend/src/seed"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/PortalCiudadano/Gestiones-Backend/src/session"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.SecretariaModel{},
		&models.TipoGestionModel{},
		&models.GestionModel{},
		&models.EvidenciaModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Seed the catalog of secretarías and tipos de gestión if empty
	seed.Seed(db)

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET not set, using development default")
		secret = "default-dev-secret-change-me"
	}
	middleware.SetSecretKey(secret)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Session state: every process start begins with no one logged in
	sessions := session.NewManager()

	// Services setup
	userService := services.NewUserService(db, sessions)
	secretariaService := services.NewSecretariaService(db)
	tipoGestionService := services.NewTipoGestionService(db)
	gestionService := services.NewGestionService(db, services.NewGeocodingService())

	// Routes setup
	routes.SetupUserRoutes(router, userService, sessions)
	routes.SetupSecretariaRoutes(router, secretariaService, tipoGestionService, sessions)
	routes.SetupGestionRoutes(router, gestionService, sessions)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Portal de Gestiones Ciudadanas")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
