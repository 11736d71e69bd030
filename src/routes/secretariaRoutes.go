package routes

import (
	"github.com/PortalCiudadano/Gestiones-Backend/src/controllers"
	"github.com/PortalCiudadano/Gestiones-Backend/src/middleware"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/PortalCiudadano/Gestiones-Backend/src/session"
	"github.com/gin-gonic/gin"
)

func SetupSecretariaRoutes(router *gin.Engine, service *services.SecretariaService, tipoService *services.TipoGestionService, sessions *session.Manager) {
	secretariaController := controllers.NewSecretariaController(service, tipoService)

	// Protected routes
	secretaria := router.Group("/secretarias")
	secretaria.Use(middleware.AuthMiddleware(sessions))
	{
		secretaria.GET("", secretariaController.GetAllSecretarias)
		secretaria.GET("/:id/tipos", secretariaController.GetTiposBySecretaria)
	}
}
