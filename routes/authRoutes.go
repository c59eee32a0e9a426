package routes

import (
	"github.com/gadgetfinder/gadget-finder-api/controllers"
	"github.com/gadgetfinder/gadget-finder-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.GET("/login", controllers.GoogleLogin)
		auth.GET("/callback", controllers.GoogleCallback)
		auth.GET("/me", middlewares.RequireAuth(), controllers.Me)
	}
}
