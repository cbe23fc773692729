package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the persisted record of a mock checkout. No payment is
// processed; the order exists so the confirmation flow has something to
// point at.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"userId" json:"userId"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName" json:"productName"`
	Price         int64              `bson:"price" json:"price"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	TotalPrice    int64              `bson:"totalPrice" json:"totalPrice"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentMethod is one of the fixed checkout options.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentMethods returns the fixed set offered at checkout.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "cod", Name: "Thanh toán khi nhận hàng (COD)"},
		{ID: "momo", Name: "Ví MoMo"},
		{ID: "zalopay", Name: "ZaloPay"},
		{ID: "viettelmoney", Name: "Viettel Money"},
	}
}
