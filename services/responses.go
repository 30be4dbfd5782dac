package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID uint   `json:"user_id"`
}

// CustomerResponse is the customer view, optionally with order history
type CustomerResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Orders []OrderResponse `json:"orders"`
}

// ProductResponse is the product view
type ProductResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// OrderResponse is the order view with its line items
type OrderResponse struct {
	ID            uint                `json:"id"`
	CustomerID    uint                `json:"customer_id"`
	OrderDate     time.Time           `json:"order_date"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
}

// OrderItemResponse is an order line with the product's display name resolved
type OrderItemResponse struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
}

// InvoiceResponse is the invoice view
type InvoiceResponse struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
