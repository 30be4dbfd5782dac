package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is created together with its order, one-to-one. TotalAmount always
// equals the owning order's total at creation and is never updated.
type Invoice struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;uniqueIndex" json:"order_id"`
	InvoiceDate time.Time       `gorm:"not null" json:"invoice_date"` // UTC
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
