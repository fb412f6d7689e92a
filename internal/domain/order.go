package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses are derived from order age when listing, matching the
// storefront's pseudo-fulfillment timeline.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// Order is an immutable record created at checkout. Items carry a snapshot
// of the product at order time so later catalog edits never rewrite history.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress Address         `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          string          `json:"status"`
}

type OrderItem struct {
	ProductID       string          `json:"productId"`
	Qty             int             `json:"qty"`
	NameAtOrder     string          `json:"nameAtOrder"`
	PriceAtOrder    decimal.Decimal `json:"priceAtOrder"`
	ImageURLAtOrder string          `json:"imageUrlAtOrder,omitempty"`
}
