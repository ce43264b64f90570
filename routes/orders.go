package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/socialcoffee/ordering-api/controllers/order"
	"github.com/socialcoffee/ordering-api/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	orders := api.Group("/orders")
	{
		// Guests may order too, so the token is optional here.
		orders.POST("", middleware.OptionalToken,
			orderControllers.CreateOrder(deps.DB, deps.Payments, deps.Hub, deps.Log))

		// Polled by the storefront while the payment QR is on screen.
		orders.GET("/status/:orderID",
			orderControllers.GetOrderStatus(deps.DB, deps.Payments, deps.Hub, deps.Log))

		orders.GET("/:orderID", middleware.ValidateToken, orderControllers.GetOrder(deps.DB))
	}
}
