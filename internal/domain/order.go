package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRequest is the cart snapshot handed to the remote order service.
type OrderRequest struct {
	IdempotencyKey uuid.UUID       `json:"idempotencyKey"`
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	Email          string          `json:"email"`
	OrderDate      string          `json:"orderDate"`
	AddressID      *string         `json:"addressId"`
	Currency       string          `json:"currency"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CouponCode     string          `json:"couponCode,omitempty"`
	Items          []OrderItem     `json:"items"`
}

type OrderItem struct {
	ProductName string `json:"productName"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	Variant     string `json:"selectedColor,omitempty"`
}
