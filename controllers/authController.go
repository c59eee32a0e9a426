package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gadgetfinder/gadget-finder-api/initializers"
	"github.com/gadgetfinder/gadget-finder-api/models"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	msgAuthNotConfigured     = "Google login is not configured"
	msgMissingAuthCode       = "missing authorization code"
	msgFailedToExchangeCode  = "failed to complete Google sign-in"
	msgFailedToGenerateToken = "failed to generate token"
	msgNotAuthenticated      = "not authenticated"
)

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

func redirectURI() string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + "/api/auth/callback"
}

// GoogleLogin redirects the browser to Google's consent screen. When OAuth
// credentials are missing the endpoint degrades to a clear error instead of
// a broken redirect.
func GoogleLogin(ctx *gin.Context) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgAuthNotConfigured)
		return
	}

	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI())
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("prompt", "consent")
	params.Set("access_type", "offline")

	ctx.Redirect(http.StatusTemporaryRedirect, googleAuthURL+"?"+params.Encode())
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func exchangeCodeForUser(ctx context.Context, code string) (*googleUserInfo, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	resp, err := client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     os.Getenv("GOOGLE_CLIENT_ID"),
			"client_secret": os.Getenv("GOOGLE_CLIENT_SECRET"),
			"redirect_uri":  redirectURI(),
			"grant_type":    "authorization_code",
		}).
		Post(googleTokenURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("access token not found in response")
	}

	resp, err = client.R().
		SetContext(ctx).
		SetAuthToken(tokenResponse.AccessToken).
		Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode())
	}

	var info googleUserInfo
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("failed to parse userinfo response: %w", err)
	}
	return &info, nil
}

// upsertUser records the sign-in. With no database configured the session
// stays stateless and the JWT alone carries the identity.
func upsertUser(ctx context.Context, info *googleUserInfo) {
	collection := initializers.UserCollection()
	if collection == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	_, err := collection.UpdateOne(ctx,
		bson.M{"googleId": info.ID},
		bson.M{
			"$set": bson.M{
				"email":     info.Email,
				"name":      info.Name,
				"picture":   info.Picture,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"googleId":  info.ID,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Println("Error saving user:", err)
	}
}

func generateSessionToken(info *googleUserInfo) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     info.ID,
		"email":   info.Email,
		"name":    info.Name,
		"picture": info.Picture,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GoogleCallback exchanges the authorization code, upserts the user and
// answers with a 30-day session token.
func GoogleCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingAuthCode)
		return
	}

	info, err := exchangeCodeForUser(ctx.Request.Context(), code)
	if err != nil {
		log.Println("Google sign-in error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToExchangeCode)
		return
	}

	upsertUser(ctx.Request.Context(), info)

	tokenString, err := generateSessionToken(info)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": tokenString, "user": models.User{
		GoogleID: info.ID,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	}})
}

// Me echoes the authenticated user's claims.
func Me(ctx *gin.Context) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": userClaims})
}
