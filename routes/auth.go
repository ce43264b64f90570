package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/socialcoffee/ordering-api/auth"
)

func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB))
	}
}
