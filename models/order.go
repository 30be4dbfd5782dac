package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order. It exclusively owns its items and its
// invoice; both are created together with the order in a single insert.
// TotalAmount is the discount-adjusted sum computed at creation time and is
// never recomputed afterwards; only Status is mutated post-creation.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    uint            `gorm:"not null;index" json:"customer_id"` // foreign key to customers table
	Customer      Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	OrderDate     time.Time       `gorm:"not null" json:"order_date"` // UTC
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"size:100;not null" json:"payment_method"` // "Credit Card", "PayPal" or "Cash"
	Status        string          `gorm:"size:50;not null;default:'Pending'" json:"status"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	Invoice       Invoice         `gorm:"foreignKey:OrderID" json:"invoice"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
