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

// buildHandler handles HTTP requests for production builds.
type buildHandler struct {
	buildService portssvc.BuildSvcFacade
}

// newBuildHandler creates a new buildHandler.
func newBuildHandler(buildService portssvc.BuildSvcFacade) *buildHandler {
	return &buildHandler{buildService: buildService}
}

// postBuild godoc
// @Summary Post a production build
// @Description Consumes raw materials per the BOM, receives the finished good at weighted-average cost, and posts the balanced journal, all atomically
// @Tags builds
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   build body dto.BuildProductRequest true "Build request"
// @Success 201 {object} dto.BuildProductResponse "The posted build"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "BOM or product not found"
// @Failure 409 {object} map[string]string "Archived BOM or concurrent build"
// @Failure 422 {object} map[string]string "Insufficient stock or missing ledger account"
// @Router /tenants/{tenantID}/builds [post]
func (h *buildHandler) postBuild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	req := dto.BuildProductRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postBuild", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assembly, err := h.buildService.BuildProduct(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to post build")
		return
	}

	logger.Info("Build posted", slog.String("assembly_id", assembly.AssemblyID))
	c.JSON(http.StatusCreated, dto.ToBuildProductResponse(assembly))
}

// reverseBuild godoc
// @Summary Reverse a posted build
// @Description Restores inventory from the stored assembly lines, voids the ledger transaction, and marks the build REVERSED
// @Tags builds
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   assemblyID path string true "Assembly transaction ID"
// @Param   reversal body dto.ReverseBuildRequest true "Reversal reason"
// @Success 200 {object} map[string]string "Reversal confirmation"
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Assembly not found"
// @Failure 409 {object} map[string]string "Already reversed"
// @Router /tenants/{tenantID}/builds/{assemblyID}/reverse [post]
func (h *buildHandler) reverseBuild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	assemblyID := c.Param("assemblyID")

	req := dto.ReverseBuildRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverseBuild", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A reversal reason is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.buildService.ReverseBuild(c.Request.Context(), tenantID, assemblyID, req.Reason, userID); err != nil {
		respondBuildError(c, logger, err, "Failed to reverse build")
		return
	}

	logger.Info("Build reversed", slog.String("assembly_id", assemblyID))
	c.JSON(http.StatusOK, gin.H{"assemblyID": assemblyID, "status": "REVERSED"})
}

// getBuild godoc
// @Summary Get a build
// @Description Retrieves an assembly transaction with its component lines
// @Tags builds
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   assemblyID path string true "Assembly transaction ID"
// @Success 200 {object} dto.AssemblyResponse
// @Failure 404 {object} map[string]string "Assembly not found"
// @Router /tenants/{tenantID}/builds/{assemblyID} [get]
func (h *buildHandler) getBuild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	assemblyID := c.Param("assemblyID")

	assembly, err := h.buildService.GetAssemblyByID(c.Request.Context(), tenantID, assemblyID)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to retrieve build")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssemblyResponse(assembly))
}

// listBuilds godoc
// @Summary List builds
// @Description Retrieves assembly transactions for a tenant, newest first
// @Tags builds
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListAssembliesResponse
// @Router /tenants/{tenantID}/builds [get]
func (h *buildHandler) listBuilds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	params := dto.ListAssembliesParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listBuilds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	assemblies, err := h.buildService.ListAssemblies(c.Request.Context(), tenantID, params)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to list builds")
		return
	}

	resp := dto.ListAssembliesResponse{
		Assemblies: make([]dto.AssemblyResponse, len(assemblies)),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	for i := range assemblies {
		resp.Assemblies[i] = dto.ToAssemblyResponse(&assemblies[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getBuildWastage godoc
// @Summary Get the wastage record of a build
// @Tags builds
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   assemblyID path string true "Assembly transaction ID"
// @Success 200 {object} dto.WastageResponse
// @Failure 404 {object} map[string]string "No wastage record"
// @Router /tenants/{tenantID}/builds/{assemblyID}/wastage [get]
func (h *buildHandler) getBuildWastage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	assemblyID := c.Param("assemblyID")

	record, err := h.buildService.GetWastageByAssembly(c.Request.Context(), tenantID, assemblyID)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to retrieve wastage record")
		return
	}

	c.JSON(http.StatusOK, dto.ToWastageResponse(record))
}

// getBuildExcise godoc
// @Summary Get the excise duty record of a build
// @Tags builds
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   assemblyID path string true "Assembly transaction ID"
// @Success 200 {object} dto.ExciseDutyResponse
// @Failure 404 {object} map[string]string "No excise duty record"
// @Router /tenants/{tenantID}/builds/{assemblyID}/excise [get]
func (h *buildHandler) getBuildExcise(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	assemblyID := c.Param("assemblyID")

	record, err := h.buildService.GetExciseByAssembly(c.Request.Context(), tenantID, assemblyID)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to retrieve excise duty record")
		return
	}

	c.JSON(http.StatusOK, dto.ToExciseDutyResponse(record))
}

// getLedgerTransaction godoc
// @Summary Get a ledger transaction
// @Description Retrieves a ledger transaction with its debit and credit entries
// @Tags ledger
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   ledgerTransactionID path string true "Ledger transaction ID"
// @Success 200 {object} dto.LedgerTransactionResponse
// @Failure 404 {object} map[string]string "Ledger transaction not found"
// @Router /tenants/{tenantID}/ledger-transactions/{ledgerTransactionID} [get]
func (h *buildHandler) getLedgerTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	ledgerTransactionID := c.Param("ledgerTransactionID")

	txn, err := h.buildService.GetLedgerTransaction(c.Request.Context(), tenantID, ledgerTransactionID)
	if err != nil {
		respondBuildError(c, logger, err, "Failed to retrieve ledger transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerTransactionResponse(txn))
}

// respondBuildError maps service errors to HTTP status codes. Unbalanced
// journals are internal defects and deliberately map to 500.
func respondBuildError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest), errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidBOM):
		logger.Warn("Rejected build request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBOMArchived), errors.Is(err, apperrors.ErrAlreadyReversed), errors.Is(err, apperrors.ErrConcurrencyConflict):
		logger.Warn("Conflicting build request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStock), errors.Is(err, apperrors.ErrMissingLedgerAccount):
		logger.Warn("Unprocessable build request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
