package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Gadget Finder API. Browse, search and list electronic gadgets.

The following are the endpoints for this API:

AUTH
- GET "/api/auth/login" - Start Google sign-in
- GET "/api/auth/callback" - Complete Google sign-in, returns a session token
- GET "/api/auth/me" - Current session

PRODUCT
- GET "/api/products" - Get all products (optional search, category, page, limit)
- GET "/api/featured-products" - Get up to 4 featured products
- GET "/api/products/{id}" - Get product by ID with related products
- GET "/api/products/{id}/image" - Redirect to the product's best available image
- POST "/api/AddProduct" - Create new product (auth required)
- POST "/api/upload-images" - Upload images to the image host (auth required)
- POST "/api/products/submit" - Full submission: validate, upload, insert (auth required)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
