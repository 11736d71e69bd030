package routes

import (
	"github.com/PortalCiudadano/Gestiones-Backend/src/controllers"
	"github.com/PortalCiudadano/Gestiones-Backend/src/middleware"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/PortalCiudadano/Gestiones-Backend/src/session"
	"github.com/gin-gonic/gin"
)

func SetupGestionRoutes(router *gin.Engine, service *services.GestionService, sessions *session.Manager) {
	gestionController := controllers.NewGestionController(service)

	// Protected routes
	gestionGroup := router.Group("/gestiones")
	gestionGroup.Use(middleware.AuthMiddleware(sessions))
	{
		gestionGroup.GET("", gestionController.GetMyGestiones)
		gestionGroup.GET("/export", gestionController.ExportGestiones)
		gestionGroup.GET("/:id", gestionController.GetGestionByID)
		gestionGroup.POST("", gestionController.CreateGestion)

		// Evidencia
		gestionGroup.POST("/:id/evidencia", gestionController.UploadEvidencia)
		gestionGroup.POST("/:id/evidencia/drive", gestionController.ImportEvidenciaFromDrive)
		gestionGroup.GET("/:id/evidencia", gestionController.ServeEvidencia)
	}
}
