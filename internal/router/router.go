package router

import (
	"time"

	"github.com/gyeongmo89/samsip/internal/config"
	"github.com/gyeongmo89/samsip/internal/handler"
	"github.com/gyeongmo89/samsip/internal/middleware"
	"github.com/gyeongmo89/samsip/internal/repository"
	"github.com/gyeongmo89/samsip/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	supplierRepo := repository.NewSupplierRepository(db)
	itemRepo := repository.NewItemRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	resolver := service.NewResolver(supplierRepo, itemRepo, unitRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	itemSvc := service.NewItemService(itemRepo)
	unitSvc := service.NewUnitService(unitRepo)
	orderSvc := service.NewOrderService(orderRepo, supplierRepo, itemRepo, unitRepo, resolver)
	importSvc := service.NewImportService(orderRepo, resolver)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	unitsH := handler.NewUnitsHandler(unitSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	uploadH := handler.NewUploadHandler(importSvc)
	statsH := handler.NewStatsHandler(orderRepo, rdb, time.Duration(cfg.StatsCacheTTL)*time.Second)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("/", suppliersH.Create)
		suppliers.GET("/", suppliersH.List)
		suppliers.PUT("/:id", suppliersH.Update)
		suppliers.POST("/bulk-delete", suppliersH.BulkDelete)
	}

	items := r.Group("/items")
	{
		items.POST("/", itemsH.Create)
		items.GET("/", itemsH.List)
		items.PUT("/:id", itemsH.Update)
		items.POST("/bulk-delete", itemsH.BulkDelete)
	}

	units := r.Group("/units")
	{
		units.POST("/", unitsH.Create)
		units.GET("/", unitsH.List)
		units.PUT("/:id", unitsH.Update)
		units.POST("/bulk-delete", unitsH.BulkDelete)
	}

	orders := r.Group("/orders")
	{
		orders.POST("/", ordersH.Create)
		orders.GET("/", ordersH.List)
		orders.PUT("/:id", ordersH.Update)
		orders.POST("/by-name", ordersH.CreateByName)
		orders.PUT("/:id/by-name", ordersH.UpdateByName)
		orders.POST("/bulk-delete", ordersH.BulkDelete)
		orders.POST("/upload", uploadH.Import)
		orders.GET("/template", uploadH.Template)
	}

	r.GET("/stats", statsH.Get)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
