package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
)

// InvoiceRepository provides read access to invoices. Invoices are created
// through their owning order and never written independently.
type InvoiceRepository interface {
	// GetByID returns the invoice, or nil when no such invoice exists.
	GetByID(id uint) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a GORM-backed InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
