package routes

import (
	"github.com/gin-gonic/gin"

	pickupControllers "github.com/socialcoffee/ordering-api/controllers/pickup"
)

func SetupPickupRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/pickup-locations", pickupControllers.GetPickupLocations(deps.DB))
}
