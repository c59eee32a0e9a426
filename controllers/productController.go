package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gadgetfinder/gadget-finder-api/initializers"
	"github.com/gadgetfinder/gadget-finder-api/models"
	"github.com/gadgetfinder/gadget-finder-api/services"
	"github.com/gadgetfinder/gadget-finder-api/utils"
	"github.com/gin-gonic/gin"
)

func productService() *services.ProductService {
	return services.NewProductService(initializers.ProductCollection())
}

func respondWithError(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"error": message})
}

// GetProducts returns the whole catalog, newest first. When search, category
// or page query params are present the catalog engine filters and slices the
// list server-side; a bare request returns everything, which is what the
// storefront grid fetches once per page load.
func GetProducts(ctx *gin.Context) {
	products, err := productService().GetProducts(ctx.Request.Context())
	if err != nil {
		log.Println("Error fetching products:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch products. Please try again later.")
		return
	}

	search := ctx.Query("search")
	category := ctx.Query("category")
	pageParam := ctx.Query("page")

	if search == "" && category == "" && pageParam == "" {
		ctx.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": products,
			"count":    len(products),
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(services.DefaultPageSize)))

	filtered := services.FilterProducts(products, search, category)
	result := services.Paginate(filtered, page, limit)

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   result.Items,
		"count":      len(result.Items),
		"categories": services.CategoryOptions(products),
		"metadata": gin.H{
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.PageSize,
			"totalPages": result.TotalPages,
		},
	})
}

// GetFeaturedProducts returns the featured rail, capped at four.
func GetFeaturedProducts(ctx *gin.Context) {
	products, err := productService().GetFeaturedProducts(ctx.Request.Context(), services.FeaturedPageSize)
	if err != nil {
		log.Println("Error fetching featured products:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch featured products. Please try again later.")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product and up to four related listings from the
// same category. Malformed ids are rejected before any query runs.
func GetProduct(ctx *gin.Context) {
	product, related, err := productService().GetProductByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProductID):
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID format")
		case errors.Is(err, services.ErrProductNotFound):
			respondWithError(ctx, http.StatusNotFound, "Product not found")
		default:
			log.Println("Error fetching product:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product. Please try again later.")
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"product":         product,
		"relatedProducts": related,
	})
}

// AddProduct inserts a product document. The body carries image URLs that
// were uploaded beforehand; this handler never touches the image host.
func AddProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: name, price, and sku are required")
		return
	}

	productID, err := productService().CreateProduct(ctx.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRequired):
			respondWithError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotPersisted):
			log.Println("Error adding product:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to insert product into database")
		default:
			log.Println("Error adding product:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Internal server error. Please try again later.")
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Electronic product added successfully!",
		"productId": productID,
	})
}

// GetProductImage redirects to the first stored image URL that still
// resolves, falling back to the category illustration when none do.
func GetProductImage(ctx *gin.Context) {
	product, _, err := productService().GetProductByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProductID):
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID format")
		case errors.Is(err, services.ErrProductNotFound):
			respondWithError(ctx, http.StatusNotFound, "Product not found")
		default:
			log.Println("Error resolving product image:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product. Please try again later.")
		}
		return
	}

	ctx.Redirect(http.StatusFound, utils.ResolveProductImage(product.Images, product.Category))
}
