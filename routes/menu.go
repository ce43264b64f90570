package routes

import (
	"github.com/gin-gonic/gin"

	menuControllers "github.com/socialcoffee/ordering-api/controllers/menu"
)

func SetupMenuRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/menu", menuControllers.GetMenu(deps.DB, deps.Cache, deps.Log))
}
