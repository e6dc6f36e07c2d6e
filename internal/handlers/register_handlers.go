package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/prodbooks/mfg_ledger/cmd/docs"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/middleware"
	"github.com/prodbooks/mfg_ledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	// Apply rate limiting and AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.RateLimit(limiterInstance),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	v1.GET("/example/helloworld", GetHome)

	tenants := v1.Group("/tenants/:tenantID")
	RegisterBuildRoutes(tenants, services.Build)
	registerInventoryRoutes(tenants, services.Inventory)
	registerBOMRoutes(tenants, services.BOM)

	return nil
}

// RegisterBuildRoutes wires the build, wastage, excise and ledger read routes
// onto the tenant-scoped group. Exported so handler tests can mount them.
func RegisterBuildRoutes(tenants *gin.RouterGroup, buildService portssvc.BuildSvcFacade) {
	h := newBuildHandler(buildService)

	builds := tenants.Group("/builds")
	builds.POST("", h.postBuild)
	builds.GET("", h.listBuilds)
	builds.GET("/:assemblyID", h.getBuild)
	builds.POST("/:assemblyID/reverse", h.reverseBuild)
	builds.GET("/:assemblyID/wastage", h.getBuildWastage)
	builds.GET("/:assemblyID/excise", h.getBuildExcise)

	tenants.GET("/ledger-transactions/:ledgerTransactionID", h.getLedgerTransaction)
}

func registerInventoryRoutes(tenants *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := tenants.Group("/inventory")
	inventory.GET("", h.listItems)
	inventory.GET("/:productID", h.getItem)
}

func registerBOMRoutes(tenants *gin.RouterGroup, bomService portssvc.BOMSvcFacade) {
	h := newBOMHandler(bomService)

	boms := tenants.Group("/boms")
	boms.POST("", h.createBOM)
	boms.GET("/:bomID", h.getBOM)
	boms.POST("/:bomID/archive", h.archiveBOM)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
