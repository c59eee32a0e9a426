package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gadgetfinder/gadget-finder-api/initializers"
	"github.com/gadgetfinder/gadget-finder-api/models"
	"github.com/gadgetfinder/gadget-finder-api/services"
	"github.com/gin-gonic/gin"
)

func uploadFilesFromForm(files []*multipart.FileHeader) []services.UploadFile {
	uploads := make([]services.UploadFile, len(files))
	for i, header := range files {
		header := header
		uploads[i] = services.UploadFile{
			Name: header.Filename,
			Open: func() (io.ReadCloser, error) { return header.Open() },
		}
	}
	return uploads
}

// UploadImages pushes every file in the "images" field to the configured
// image host concurrently and returns the aggregated batch result. Partial
// failure is not an error status here; the caller reads the subsets.
func UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	batch := services.UploadImages(ctx.Request.Context(), initializers.ImageHost(), uploadFilesFromForm(files))
	ctx.JSON(http.StatusOK, batch)
}

// SubmitProduct runs the whole submission workflow server-side: form fields
// plus attached images in one multipart request. Any upload failure aborts
// the submission before the product document is written.
func SubmitProduct(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	price, _ := strconv.ParseFloat(ctx.PostForm("price"), 64)
	stock, _ := strconv.Atoi(ctx.PostForm("stock"))
	featured, _ := strconv.ParseBool(ctx.PostForm("featured"))

	input := models.ProductInput{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Price:       price,
		Category:    ctx.PostForm("category"),
		Brand:       ctx.PostForm("brand"),
		Model:       ctx.PostForm("model"),
		SKU:         ctx.PostForm("sku"),
		Stock:       stock,
		Weight:      ctx.PostForm("weight"),
		Tags:        ctx.PostForm("tags"),
		Status:      ctx.PostForm("status"),
		Featured:    featured,
	}

	progress := []gin.H{}
	notify := func(level, message string) {
		progress = append(progress, gin.H{"level": level, "message": message})
	}

	submission := services.NewSubmissionService(initializers.ImageHost(), productService(), notify)
	for _, file := range uploadFilesFromForm(form.File["images"]) {
		submission.AttachImage(file, nil)
	}

	result := submission.Submit(ctx.Request.Context(), input)
	if result.State != services.StateSucceeded {
		status := http.StatusInternalServerError
		if result.FailedStage == services.StageValidation {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{
			"success":     false,
			"error":       result.Err.Error(),
			"failedStage": result.FailedStage,
			"progress":    progress,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Electronic product added successfully!",
		"productId": result.ProductID,
		"images":    result.ImageURLs,
		"progress":  progress,
	})
}
