package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vietmarket/internal/gemini"
	"vietmarket/internal/models"
)

type describeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// POST /products/describe
// Generation failures never surface as errors; the describer answers with
// fixed fallback text and the submission flow continues.
func DescribeProduct(describer gemini.Describer) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products/describe"
		defer handlePanic(c, route)

		var req describeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		category := req.Category
		if category == "" {
			category = models.CategoryOther
		}

		description := describer.Describe(c.Request.Context(), req.Name, category)

		log.Printf("[%s] generated %d chars for %q", route, len(description), req.Name)
		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
