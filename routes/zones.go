package routes

import (
	"github.com/gin-gonic/gin"

	zoneControllers "github.com/socialcoffee/ordering-api/controllers/zone"
)

func SetupZoneRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/delivery-zones", zoneControllers.GetZones(deps.DB))
}
