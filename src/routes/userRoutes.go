package routes

import (
	"github.com/PortalCiudadano/Gestiones-Backend/src/controllers"
	"github.com/PortalCiudadano/Gestiones-Backend/src/middleware"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/PortalCiudadano/Gestiones-Backend/src/session"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService, sessions *session.Manager) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)
	router.POST("/register", userController.RegisterUser)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions))
	{
		auth.POST("/logout", userController.Logout)
	}
}
