package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vietmarket/internal/catalog"
	"vietmarket/internal/feed"
	"vietmarket/internal/store"
)

const maxWorkbookSize = 10 << 20

/*
POST /admin/products/import
Bulk submission from an uploaded xlsx workbook with the feed's column
layout. Imported rows belong to the uploading user and persist like any
other submission.
*/
func ImportProducts(ctrl *catalog.Controller, sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products/import"
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

		file, err := c.FormFile("file")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "file is required")
			return
		}

		if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".xlsx" {
			respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf("unsupported file type: %s", ext))
			return
		}
		if file.Size > maxWorkbookSize {
			respondWithError(c, http.StatusBadRequest, route, "file too large (max 10MB)")
			return
		}

		src, err := file.Open()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "cannot read upload")
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "cannot read upload")
			return
		}

		products, err := feed.ParseWorkbook(data)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if len(products) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "workbook holds no valid products")
			return
		}

		now := time.Now().UnixMilli()
		for i := range products {
			products[i].ID = uuid.NewString()
			products[i].SellerID = user.ID
			if products[i].SellerName == "" {
				products[i].SellerName = user.Name
			}
			products[i].CreatedAt = now
		}

		if err := ctrl.AddBatch(c.Request.Context(), products); err != nil {
			log.Printf("[%s] persisting import failed: %v", route, err)
			respondWithError(c, http.StatusServiceUnavailable, route, "storage unavailable")
			return
		}

		log.Printf("[%s] imported %d products for %s", route, len(products), user.ID)
		c.JSON(http.StatusCreated, gin.H{"imported": len(products)})
	}
}
