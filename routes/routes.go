package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cache"
	"github.com/socialcoffee/ordering-api/controllers/kaspi"
	orderControllers "github.com/socialcoffee/ordering-api/controllers/order"
)

// Deps bundles the shared services handlers close over.
type Deps struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	Payments *kaspi.Client
	Hub      *orderControllers.Hub
	Log      *zap.Logger
}

// SetupRoutes is the single entry-point that wires up every route group
// under /api/v1.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/v1")

	// Public storefront routes
	SetupAuthRoutes(api, deps)
	SetupMenuRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupZoneRoutes(api, deps)
	SetupPickupRoutes(api, deps)

	// JWT-protected user routes
	SetupUserRoutes(api, deps)

	// Admin back-office routes
	SetupAdminRoutes(api, deps)
}
