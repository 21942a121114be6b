package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line item: a product reference and a quantity.
type OrderItem struct {
	ProductID string `json:"productid" bson:"productid"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	OrderID         string             `json:"orderid" bson:"orderid"`
	UserID          string             `json:"userid" bson:"userid"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"total_amount" bson:"total_amount"`
	ShippingAddress string             `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   string             `json:"payment_method" bson:"payment_method"`
	PaymentStatus   PaymentStatus      `json:"payment_status" bson:"payment_status"`
	OrderStatus     OrderStatus        `json:"order_status" bson:"order_status"`
	CreatedAt       time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updatedAt"`
}

// OrderExpanded is the admin listing shape: the raw order plus owner
// and product summaries resolved by $lookup.
type OrderExpanded struct {
	Order    `bson:",inline"`
	User     []UserSummary    `json:"user" bson:"user"`
	Products []ProductSummary `json:"products" bson:"products"`
}

type UserSummary struct {
	UserID string `json:"userid" bson:"userid"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
}

type ProductSummary struct {
	ProductID string  `json:"productid" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
}
