package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/socialcoffee/ordering-api/controllers/admin"
	pickupControllers "github.com/socialcoffee/ordering-api/controllers/pickup"
	productControllers "github.com/socialcoffee/ordering-api/controllers/product"
	profileControllers "github.com/socialcoffee/ordering-api/controllers/profile"
	zoneControllers "github.com/socialcoffee/ordering-api/controllers/zone"
	"github.com/socialcoffee/ordering-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints, JWT-protected and
// restricted to the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		admin.GET("/dashboard", adminControllers.Dashboard(deps.DB))
		admin.GET("/users", profileControllers.ListUsers(deps.DB))

		// ─────────── Order Management ───────────
		orderAdmin := admin.Group("/orders")
		{
			orderAdmin.GET("/active", adminControllers.ActiveOrders(deps.DB))
			orderAdmin.GET("/closed", adminControllers.ClosedOrders(deps.DB))
			orderAdmin.PATCH("/:orderID/complete", adminControllers.CompleteOrder(deps.DB))
			orderAdmin.PATCH("/:orderID/cancel", adminControllers.CancelOrder(deps.DB))
			orderAdmin.GET("/export-excel", adminControllers.ExportOrdersToExcel(deps.DB))
			orderAdmin.GET("/ws", deps.Hub.Handler())
		}

		// ─────────── Menu Management ───────────
		productAdmin := admin.Group("/products")
		{
			productAdmin.GET("", productControllers.GetProducts(deps.DB))
			productAdmin.GET("/:id", productControllers.GetProduct(deps.DB))
			productAdmin.POST("", productControllers.CreateProduct(deps.DB, deps.Cache))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB, deps.Cache))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB, deps.Cache))
		}

		categoryAdmin := admin.Group("/categories")
		{
			categoryAdmin.GET("", productControllers.GetCategories(deps.DB))
			categoryAdmin.POST("", productControllers.CreateCategory(deps.DB, deps.Cache))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(deps.DB, deps.Cache))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(deps.DB, deps.Cache))
		}

		optionAdmin := admin.Group("/option-groups")
		{
			optionAdmin.GET("", productControllers.GetOptionGroups(deps.DB))
			optionAdmin.POST("", productControllers.CreateOptionGroup(deps.DB, deps.Cache))
			optionAdmin.DELETE("/:id", productControllers.DeleteOptionGroup(deps.DB, deps.Cache))
		}
		admin.POST("/options", productControllers.CreateOption(deps.DB, deps.Cache))
		admin.PUT("/options/:id", productControllers.UpdateOption(deps.DB, deps.Cache))
		admin.DELETE("/options/:id", productControllers.DeleteOption(deps.DB, deps.Cache))

		// ─────────── Delivery Settings ───────────
		zoneAdmin := admin.Group("/delivery-zones")
		{
			zoneAdmin.POST("", zoneControllers.CreateZone(deps.DB))
			zoneAdmin.PUT("/:id", zoneControllers.UpdateZone(deps.DB))
			zoneAdmin.DELETE("/:id", zoneControllers.DeleteZone(deps.DB))
		}

		pickupAdmin := admin.Group("/pickup-locations")
		{
			pickupAdmin.POST("", pickupControllers.CreatePickupLocation(deps.DB))
			pickupAdmin.PUT("/:id", pickupControllers.UpdatePickupLocation(deps.DB))
			pickupAdmin.DELETE("/:id", pickupControllers.DeletePickupLocation(deps.DB))
		}
	}
}
