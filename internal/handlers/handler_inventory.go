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

// inventoryHandler handles HTTP requests for inventory balances.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newInventoryHandler creates a new inventoryHandler.
func newInventoryHandler(inventoryService portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: inventoryService}
}

// getItem godoc
// @Summary Get the inventory item for a product
// @Tags inventory
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "No inventory item for product"
// @Router /tenants/{tenantID}/inventory/{productID} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	productID := c.Param("productID")

	item, err := h.inventoryService.GetItemByProduct(c.Request.Context(), tenantID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to retrieve inventory item", slog.String("error", err.Error()), slog.String("product_id", productID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inventory item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.InventoryItemResponse
// @Router /tenants/{tenantID}/inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	params := dto.ListInventoryParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), tenantID, params)
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory items"})
		return
	}

	resp := make([]dto.InventoryItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToInventoryItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, resp)
}
