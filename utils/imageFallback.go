package utils

import (
	"net/http"
	"strings"
	"time"
)

var fallbackImages = map[string]string{
	"Smartphones":            "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Laptops & Computers":    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Tablets":                "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Smart Watches":          "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Headphones & Audio":     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Gaming Consoles":        "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Cameras & Photography":  "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Smart Home Devices":     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Televisions & Displays": "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Electronics":            "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
	"Gadgets":                "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
}

const defaultFallbackImage = "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop&crop=center&auto=format&q=80"

// FallbackImage returns the illustrative image for a category, or the
// default illustration when the category has no entry.
func FallbackImage(category string) string {
	if url, ok := fallbackImages[category]; ok {
		return url
	}
	return defaultFallbackImage
}

// ImageResolver walks a product's image list for one display instance.
// Current returns the candidate to render; Advance moves past a URL that
// failed to load; once the list is exhausted (or was empty), Current settles
// on the category fallback, then the default. Reset rewinds to the first
// image whenever the displayed product changes.
type ImageResolver struct {
	productID string
	images    []string
	category  string
	index     int
}

func NewImageResolver(productID string, images []string, category string) *ImageResolver {
	return &ImageResolver{productID: productID, images: images, category: category}
}

func (r *ImageResolver) Current() string {
	if r.index < len(r.images) {
		return r.images[r.index]
	}
	return FallbackImage(r.category)
}

// Advance reports whether another stored image remains to try. After it
// returns false, Current keeps answering the fallback.
func (r *ImageResolver) Advance() bool {
	if r.index < len(r.images) {
		r.index++
	}
	return r.index < len(r.images)
}

// Exhausted reports whether the stored list has been walked past its end.
func (r *ImageResolver) Exhausted() bool {
	return r.index >= len(r.images)
}

// Reset re-keys the resolver to a product. A different product id rewinds
// the chain to the first stored image; the same id leaves it where it is, so
// re-renders of one page do not restart the walk.
func (r *ImageResolver) Reset(productID string, images []string, category string) {
	if r.productID == productID {
		return
	}
	r.productID = productID
	r.images = images
	r.category = category
	r.index = 0
}

// probeClient only needs headers, so redirects are followed but bodies are
// never read.
var probeClient = &http.Client{Timeout: 5 * time.Second}

// ProbeImageURL checks that a URL answers 200 with an image content type.
func ProbeImageURL(url string) bool {
	if url == "" {
		return false
	}
	resp, err := probeClient.Head(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK &&
		strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
}

// ResolveProductImage walks the fallback chain server-side: the first stored
// URL that probes as a live image wins, otherwise the category fallback.
func ResolveProductImage(images []string, category string) string {
	for _, url := range images {
		if ProbeImageURL(url) {
			return url
		}
	}
	return FallbackImage(category)
}
