package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"vietmarket/internal/models"
	"vietmarket/internal/store"
)

/*
POST /auth/login
There is no password check: every login fabricates a fresh guest identity,
records it and hands back a short-lived access token.
*/
func Login(db *mongo.Database, sessions *store.SessionStore, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			Name:      "Khách hàng Shopee",
			Email:     "user@gmail.com",
			Avatar:    "https://i.pravatar.cc/150?u=shopee",
			IsSeller:  true,
			CreatedAt: time.Now(),
		}

		insertCtx, cancel := contextWithTimeout(c)
		defer cancel()

		if _, err := db.Collection("users").InsertOne(insertCtx, user); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := sessions.SaveUser(c.Request.Context(), user, accessTTL); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "session storage unavailable")
			return
		}

		token, err := signAccessToken(user.ID, jwtSecret, accessTTL)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token error")
			return
		}

		log.Printf("[%s] guest %s logged in", route, user.ID)
		c.JSON(http.StatusOK, gin.H{
			"user":        user,
			"accessToken": token,
			"expiresIn":   int64(accessTTL.Seconds()),
		})
	}
}

// GET /auth/me
func GetMe(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /auth/me"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		user, err := sessions.GetUser(c.Request.Context(), userID)
		if err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "session expired")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /auth/logout
func Logout(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/logout"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		if err := sessions.DeleteUser(c.Request.Context(), userID); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "session storage unavailable")
			return
		}

		log.Printf("[%s] guest %s logged out", route, userID)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func signAccessToken(userID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
