package model

import (
	"time"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
)

// OrderStatus tracks an order from checkout to the delivery run. Only the
// packing/admin side moves an order forward; the portal only ever creates
// provisional orders.
type OrderStatus string

const (
	StatusProvisional OrderStatus = "provisional"
	StatusConfirmed   OrderStatus = "confirmed"
	StatusProcessing  OrderStatus = "processing"
	StatusDelivered   OrderStatus = "delivered"
	StatusCancelled   OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusProvisional, StatusConfirmed, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is the full record written to the local order log at checkout.
// Immutable once written, apart from status moves done on the remote rows.
type Order struct {
	OrderNumber    string                     `json:"orderNumber"`
	Customer       Customer                   `json:"customer"`
	Items          Cart                       `json:"items"`
	Products       map[string]catalog.Product `json:"products"`
	Timestamp      time.Time                  `json:"timestamp"`
	Status         OrderStatus                `json:"status"`
	EstimatedTotal float64                    `json:"estimatedTotal"`
	TotalWeightKg  float64                    `json:"totalWeight"`
	ItemCount      int                        `json:"itemCount"`
}

// OrderRow is the denormalized shape the remote orders table stores: one
// row per order line, keyed orderNumber-index so a whole order can be
// fetched by prefix.
type OrderRow struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	DeliveryAddress string      `json:"delivery_address"`
	ProductKey      string      `json:"product"`
	ProductName     string      `json:"product_name"`
	Quantity        int         `json:"quantity"`
	PricePerKg      float64     `json:"price_per_kg"`
	LineWeightKg    float64     `json:"line_weight_kg"`
	LineTotal       float64     `json:"line_total"`
	Status          OrderStatus `json:"status"`
	OrderDate       time.Time   `json:"order_date"`
	CreatedAt       *time.Time  `json:"created_at,omitempty"`
}

// OrderItemRow is the detail row stored alongside each line with the
// per-product metadata frozen at order time.
type OrderItemRow struct {
	ID                string     `json:"id"`
	OrderNumber       string     `json:"order_number"`
	ProductKey        string     `json:"product"`
	ProductName       string     `json:"product_name"`
	Category          string     `json:"category"`
	Quantity          int        `json:"quantity"`
	PricePerKg        float64    `json:"price_per_kg"`
	EstimatedWeightKg float64    `json:"estimated_weight_kg"`
	LineWeightKg      float64    `json:"line_weight_kg"`
	LineTotal         float64    `json:"line_total"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}
