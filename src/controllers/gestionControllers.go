package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PortalCiudadano/Gestiones-Backend/src/dtos"
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"github.com/PortalCiudadano/Gestiones-Backend/src/services"
	"github.com/PortalCiudadano/Gestiones-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

// Tamaño máximo aceptado para un archivo de evidencia
const maxEvidenciaSize = 10 << 20 // 10 MB

type GestionController struct {
	service *services.GestionService
}

func NewGestionController(service *services.GestionService) *GestionController {
	return &GestionController{service: service}
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrTituloObligatorio) ||
		errors.Is(err, services.ErrDescripcionObligatoria) ||
		errors.Is(err, services.ErrDireccionObligatoria) ||
		errors.Is(err, services.ErrTipoObligatorio) ||
		errors.Is(err, services.ErrEstadoInvalido) ||
		errors.Is(err, services.ErrTipoNoCorresponde)
}

// CreateGestion handles POST requests to submit a new gestión
func (gc *GestionController) CreateGestion(ctx *gin.Context) {
	var draft dtos.CreateGestionDTO
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := ctx.GetString("username")
	gestion, err := gc.service.CreateGestion(&draft, username)
	if err != nil {
		if isValidationError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gestion)
}

// GetMyGestiones handles GET requests to list the caller's own gestiones,
// newest first
func (gc *GestionController) GetMyGestiones(ctx *gin.Context) {
	username := ctx.GetString("username")
	gestiones, err := gc.service.GetGestionesByUsername(username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gestiones)
}

// GetGestionByID handles GET requests to retrieve one of the caller's gestiones
func (gc *GestionController) GetGestionByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	username := ctx.GetString("username")
	gestion, err := gc.service.GetGestionByID(id, username)
	if err != nil {
		if errors.Is(err, services.ErrGestionNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gestion)
}

// ExportGestiones handles GET requests to download the caller's listing as xlsx
func (gc *GestionController) ExportGestiones(ctx *gin.Context) {
	username := ctx.GetString("username")
	f, err := gc.service.ExportGestionesExcel(username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="mis_gestiones.xlsx"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not write workbook"})
		return
	}
}

// UploadEvidencia handles POST requests to attach a file to a gestión
func (gc *GestionController) UploadEvidencia(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	// Verify that the gestión exists and belongs to the caller
	username := ctx.GetString("username")
	if _, err := gc.service.GetGestionByID(id, username); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Gestión not found"})
		return
	}

	file, header, err := ctx.Request.FormFile("evidencia")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	// Validate file size
	if header.Size > maxEvidenciaSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10 MB limit"})
		return
	}

	// Validate file type
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image or PDF"})
		return
	}

	evidencia, err := gc.saveEvidenciaFile(id, header.Filename, contentType, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, evidencia)
}

// ImportEvidenciaFromDrive handles POST requests with a Google Drive link the
// citizen shared instead of uploading the file directly
func (gc *GestionController) ImportEvidenciaFromDrive(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	username := ctx.GetString("username")
	if _, err := gc.service.GetGestionByID(id, username); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Gestión not found"})
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsGoogleDriveURL(req.URL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "URL is not a Google Drive link"})
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(req.URL)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, name, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	evidencia, err := gc.saveEvidenciaFile(id, name, "", body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, evidencia)
}

// ServeEvidencia handles GET requests to download the latest attachment
func (gc *GestionController) ServeEvidencia(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	username := ctx.GetString("username")
	if _, err := gc.service.GetGestionByID(id, username); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Gestión not found"})
		return
	}

	evidencia, err := gc.service.GetEvidenciaByGestionID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Evidencia not found"})
		return
	}

	if _, err := os.Stat(evidencia.FilePath); os.IsNotExist(err) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Evidencia file not found"})
		return
	}

	if evidencia.ContentType != "" {
		ctx.Header("Content-Type", evidencia.ContentType)
	}
	ctx.File(evidencia.FilePath)
}

func (gc *GestionController) saveEvidenciaFile(gestionID int, originalName, contentType string, src io.Reader) (*models.EvidenciaModel, error) {
	// Create directories if they don't exist
	uploadDir := filepath.Join("uploads", "gestiones", strconv.Itoa(gestionID))
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, errors.New("could not create upload directory")
	}

	// Generate unique filename
	filename := fmt.Sprintf("evidencia_%d_%d_%s", gestionID, time.Now().Unix(), filepath.Base(originalName))
	filePath := filepath.Join(uploadDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, errors.New("could not save file")
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, errors.New("could not save file")
	}

	evidencia := models.EvidenciaModel{
		GestionID:    gestionID,
		Filename:     filename,
		OriginalName: originalName,
		FilePath:     filePath,
		ContentType:  contentType,
		Size:         size,
	}
	if err := gc.service.SaveEvidencia(&evidencia); err != nil {
		// Clean up file if DB save fails
		os.Remove(filePath)
		return nil, errors.New("could not save evidencia metadata")
	}
	return &evidencia, nil
}
