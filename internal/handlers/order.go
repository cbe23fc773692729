package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vietmarket/internal/catalog"
	"vietmarket/internal/models"
)

type createOrderRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// resolvePaymentMethod maps a method id to its display name.
func resolvePaymentMethod(id string) (string, error) {
	for _, m := range models.PaymentMethods() {
		if m.ID == id {
			return m.Name, nil
		}
	}
	return "", fmt.Errorf("unknown payment method: %s", id)
}

// orderConfirmation is the message shown after a mock checkout.
func orderConfirmation(methodName string) string {
	return fmt.Sprintf("Bạn đã chọn thanh toán qua %s. Đơn hàng đang được khởi tạo!", methodName)
}

/*
POST /orders
Mock checkout: nothing is charged. The order document exists so the
confirmation flow and order history have a record to show.
*/
func CreateOrder(db *mongo.Database, ctrl *catalog.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		methodName, err := resolvePaymentMethod(req.PaymentMethod)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be at least 1")
			return
		}

		product, found := ctrl.Find(req.ProductID)
		if !found {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		order := models.Order{
			UserID:        userID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Price:         product.Price,
			Quantity:      quantity,
			TotalPrice:    product.Price * int64(quantity),
			PaymentMethod: req.PaymentMethod,
			Status:        "pending",
			CreatedAt:     time.Now(),
		}

		ctx, cancel := contextWithTimeout(c)
		defer cancel()

		result, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		log.Printf("[%s] order %v created for user %s", route, result.InsertedID, userID)

		c.JSON(http.StatusCreated, gin.H{
			"order":   order,
			"message": orderConfirmation(methodName),
		})
	}
}

// GET /orders
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := contextWithTimeout(c)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{"userId": userID}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
