package controllers

import (
	"net/http"
	"strconv"

	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SecretariaController struct {
	service     *services.SecretariaService
	tipoService *services.TipoGestionService
}

func NewSecretariaController(service *services.SecretariaService, tipoService *services.TipoGestionService) *SecretariaController {
	return &SecretariaController{service: service, tipoService: tipoService}
}

// GetAllSecretarias handles GET requests to retrieve the catalog of secretarías
func (c *SecretariaController) GetAllSecretarias(ctx *gin.Context) {
	secretarias, err := c.service.GetAllSecretarias()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, secretarias)
}

// GetTiposBySecretaria handles GET requests to retrieve the tipos de gestión
// of one secretaría (the form filters the tipo select with this)
func (c *SecretariaController) GetTiposBySecretaria(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid secretaría ID"})
		return
	}

	if _, err := c.service.GetSecretariaByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Secretaría not found"})
		return
	}

	tipos, err := c.tipoService.GetTiposBySecretaria(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, tipos)
}
