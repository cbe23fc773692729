package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vietmarket/internal/catalog"
	"vietmarket/internal/metrics"
	"vietmarket/internal/models"
)

/*
GET /products
- category boşsa wildcard ("Tất cả") kabul edilir
- search boşsa her ürün eşleşir
*/
func GetProducts(ctrl *catalog.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		category := strings.TrimSpace(c.Query("category"))
		if category == "" {
			category = models.CategoryAll
		}
		search := strings.TrimSpace(c.Query("search"))

		log.Printf("[%s] hit category=%s search=%s", route, category, search)

		visible := catalog.VisibleProducts(ctrl.Products(), category, search)

		log.Printf("[%s] returning %d products (source=%s)", route, len(visible), ctrl.Source())
		c.JSON(http.StatusOK, visible)
	}
}

// GET /products/:id
func GetProduct(ctrl *catalog.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		product, ok := ctrl.Find(c.Param("id"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Categories())
	}
}

// POST /sync re-runs the feed fetch and store load, replacing the catalog.
func SyncCatalog(ctrl *catalog.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /sync"
		defer handlePanic(c, route)

		source := ctrl.Refresh(c.Request.Context())
		metrics.CatalogRefreshTotal.WithLabelValues(source.String()).Inc()

		count := len(ctrl.Products())
		log.Printf("[%s] catalog rebuilt: %d products (source=%s)", route, count, source)
		c.JSON(http.StatusOK, gin.H{
			"source": source.String(),
			"count":  count,
		})
	}
}
