package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gadgetfinder/gadget-finder-api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The router under test runs with no database and no image host configured,
// which exercises the soft-fail policy: well-defined error envelopes, never
// a crash.

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", GetProducts)
	router.GET("/api/featured-products", GetFeaturedProducts)
	router.GET("/api/products/:id", GetProduct)
	router.POST("/api/AddProduct", middlewares.RequireAuth(), AddProduct)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	response := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return recorder, response
}

func TestGetProductInvalidIDFormat(t *testing.T) {
	recorder, response := doRequest(t, testRouter(), http.MethodGet, "/api/products/not-a-valid-id", "", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid product ID format", response["error"])
}

func TestListEndpointsDegradeWithoutDatabase(t *testing.T) {
	router := testRouter()

	recorder, response := doRequest(t, router, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Failed to fetch products. Please try again later.", response["error"])

	recorder, response = doRequest(t, router, http.MethodGet, "/api/featured-products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Failed to fetch featured products. Please try again later.", response["error"])
}

func TestAddProductRequiresAuthentication(t *testing.T) {
	recorder, _ := doRequest(t, testRouter(), http.MethodPost, "/api/AddProduct",
		`{"name":"X","price":10,"sku":"S-1"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func sessionToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "google-user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAddProductValidationEnvelope(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	headers := map[string]string{
		"Authorization": "Bearer " + sessionToken(t, "test-secret"),
		"Content-Type":  "application/json",
	}

	recorder, response := doRequest(t, testRouter(), http.MethodPost, "/api/AddProduct",
		`{"description":"no name, price or sku"}`, headers)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Missing required fields: name, price, and sku are required", response["error"])
}

func TestAddProductRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "google-user",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)

	recorder, _ := doRequest(t, testRouter(), http.MethodPost, "/api/AddProduct",
		`{"name":"X","price":10,"sku":"S-1"}`,
		map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
