package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vietmarket/internal/catalog"
	"vietmarket/internal/metrics"
	"vietmarket/internal/models"
	"vietmarket/internal/store"
)

type PostProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	SellerZalo  string `json:"sellerZalo"`
	SellerFB    string `json:"sellerFB"`
}

// buildSubmission turns a validated request into a catalog product owned
// by the submitting user. The wildcard category is silently remapped to
// "Khác"; any other label must come from the closed set.
func buildSubmission(req PostProductRequest, user models.User, now time.Time) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}
	if req.Price <= 0 {
		return models.Product{}, fmt.Errorf("price must be greater than 0")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return models.Product{}, fmt.Errorf("imageUrl is required")
	}

	category := strings.TrimSpace(req.Category)
	switch {
	case category == "" || category == models.CategoryAll:
		category = models.CategoryOther
	case !models.IsKnownCategory(category):
		return models.Product{}, fmt.Errorf("unknown category: %s", category)
	}

	return models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		SellerID:    user.ID,
		SellerName:  user.Name,
		SellerZalo:  strings.TrimSpace(req.SellerZalo),
		SellerFB:    strings.TrimSpace(req.SellerFB),
		CreatedAt:   now.UnixMilli(),
	}, nil
}

// POST /products
func PostProduct(ctrl *catalog.Controller, sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
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

		var req PostProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		product, err := buildSubmission(req, user, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if err := ctrl.Add(c.Request.Context(), product); err != nil {
			log.Printf("[%s] persisting submission failed: %v", route, err)
			respondWithError(c, http.StatusServiceUnavailable, route, "storage unavailable")
			return
		}

		metrics.SubmissionsTotal.Inc()
		log.Printf("[%s] product %s submitted by %s", route, product.ID, user.ID)
		c.JSON(http.StatusCreated, product)
	}
}
