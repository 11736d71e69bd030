package controllers

import (
	"errors"
	"net/http"

	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// RegisterUser handles POST requests to create a new account
func (uc *UserController) RegisterUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.RegisterUser(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUsernameTaken):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, models.RegisterResponse{
		ID:       user.Id,
		Username: user.Username,
	})
}

// AuthenticateUser handles POST requests to log in
func (uc *UserController) AuthenticateUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := uc.service.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: req.Username,
	})
}

// Logout handles POST requests to end the current session
func (uc *UserController) Logout(ctx *gin.Context) {
	sessionID := ctx.GetString("sessionId")
	uc.service.Logout(sessionID)
	ctx.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}
