package routes

import (
	"github.com/gadgetfinder/gadget-finder-api/controllers"
	"github.com/gadgetfinder/gadget-finder-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/api/products", controllers.GetProducts)
	server.GET("/api/featured-products", controllers.GetFeaturedProducts)
	server.GET("/api/products/:id", controllers.GetProduct)
	server.GET("/api/products/:id/image", controllers.GetProductImage)
	server.POST("/api/AddProduct", middlewares.RequireAuth(), controllers.AddProduct)
	server.POST("/api/upload-images", middlewares.RequireAuth(), controllers.UploadImages)
	server.POST("/api/products/submit", middlewares.RequireAuth(), controllers.SubmitProduct)
}
