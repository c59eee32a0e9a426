package initializers

import (
	"context"
	"log"
	"os"

	"github.com/gadgetfinder/gadget-finder-api/services"
)

var imageHost services.ImageHost

// SetupImageHost picks the upload backend from configuration: ImgBB when an
// API key is present, S3 when a bucket is named, otherwise a stub that fails
// every upload with a clear message. The server always starts.
func SetupImageHost() {
	if apiKey := os.Getenv("IMGBB_API_KEY"); apiKey != "" {
		imageHost = services.NewImgBBHost(apiKey)
		log.Println("Image uploads will use ImgBB.")
		return
	}

	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		host, err := services.NewS3Host(context.Background(), bucket)
		if err != nil {
			log.Println("Warning: could not configure S3 image host:", err)
		} else {
			imageHost = host
			log.Println("Image uploads will use S3 bucket", bucket)
			return
		}
	}

	imageHost = services.UnconfiguredHost{}
	log.Println("Warning: no image host configured. Image uploads will fail.")
}

func ImageHost() services.ImageHost {
	if imageHost == nil {
		imageHost = services.UnconfiguredHost{}
	}
	return imageHost
}
