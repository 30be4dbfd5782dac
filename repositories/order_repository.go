package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
)

// OrderRepository provides access to orders. Retrieval eagerly loads the
// order's items, each item's product, and the invoice.
type OrderRepository interface {
	// GetByID returns the order with items, products and invoice preloaded,
	// or nil when no such order exists.
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	// Add persists the order together with its items and invoice.
	Add(order *models.Order) error
	// UpdateStatus overwrites only the status column.
	UpdateStatus(orderID uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a GORM-backed OrderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Invoice").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Invoice").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Add(order *models.Order) error {
	// Items carry an in-memory Product reference for response mapping;
	// omit it so the insert only cascades to items and invoice.
	return r.db.Omit("Items.Product").Create(order).Error
}

func (r *orderRepository) UpdateStatus(orderID uint, status string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}
