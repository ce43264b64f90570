package routes

import (
	"github.com/gin-gonic/gin"

	profileControllers "github.com/socialcoffee/ordering-api/controllers/profile"
	"github.com/socialcoffee/ordering-api/middleware"
)

func SetupUserRoutes(api *gin.RouterGroup, deps Deps) {
	user := api.Group("/user")
	user.Use(middleware.ValidateToken)
	{
		user.GET("/profile", profileControllers.GetProfile(deps.DB))
		user.PUT("/profile", profileControllers.UpdateProfile(deps.DB))
		user.PUT("/password", profileControllers.ChangePassword(deps.DB))
	}
}
