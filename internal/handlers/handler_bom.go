package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/dto"
	"github.com/prodbooks/mfg_ledger/internal/middleware"
)

// bomHandler handles HTTP requests for bills of material.
type bomHandler struct {
	bomService portssvc.BOMSvcFacade
}

// newBOMHandler creates a new bomHandler.
func newBOMHandler(bomService portssvc.BOMSvcFacade) *bomHandler {
	return &bomHandler{bomService: bomService}
}

// createBOM godoc
// @Summary Create a bill of material
// @Description Validates component lines and persists a new ACTIVE BOM
// @Tags boms
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   bom body dto.CreateBOMRequest true "Bill of material"
// @Success 201 {object} dto.BOMResponse
// @Failure 400 {object} map[string]string "Invalid BOM"
// @Failure 404 {object} map[string]string "Unknown product"
// @Router /tenants/{tenantID}/boms [post]
func (h *bomHandler) createBOM(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	req := dto.CreateBOMRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBOM", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bom, err := h.bomService.CreateBOM(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating BOM", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create BOM", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create BOM"})
		}
		return
	}

	logger.Info("BOM created", slog.String("bom_id", bom.BOMID))
	c.JSON(http.StatusCreated, dto.ToBOMResponse(bom))
}

// getBOM godoc
// @Summary Get a bill of material
// @Tags boms
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   bomID path string true "BOM ID"
// @Success 200 {object} dto.BOMResponse
// @Failure 404 {object} map[string]string "BOM not found"
// @Router /tenants/{tenantID}/boms/{bomID} [get]
func (h *bomHandler) getBOM(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	bomID := c.Param("bomID")

	bom, err := h.bomService.GetBOMByID(c.Request.Context(), tenantID, bomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to retrieve BOM", slog.String("error", err.Error()), slog.String("bom_id", bomID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve BOM"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBOMResponse(bom))
}

// archiveBOM godoc
// @Summary Archive a bill of material
// @Description Marks a BOM ARCHIVED so no new builds can reference it
// @Tags boms
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   bomID path string true "BOM ID"
// @Success 200 {object} map[string]string "Archive confirmation"
// @Failure 404 {object} map[string]string "BOM not found"
// @Failure 409 {object} map[string]string "Already archived"
// @Router /tenants/{tenantID}/boms/{bomID}/archive [post]
func (h *bomHandler) archiveBOM(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	bomID := c.Param("bomID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.bomService.ArchiveBOM(c.Request.Context(), tenantID, bomID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrBOMArchived):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to archive BOM", slog.String("error", err.Error()), slog.String("bom_id", bomID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive BOM"})
		}
		return
	}

	logger.Info("BOM archived", slog.String("bom_id", bomID))
	c.JSON(http.StatusOK, gin.H{"bomID": bomID, "status": "ARCHIVED"})
}
