package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
)

// CustomerRepository provides access to customers and their order history.
type CustomerRepository interface {
	// GetByID returns the customer with its orders preloaded, or nil when
	// no such customer exists.
	GetByID(id uint) (*models.Customer, error)
	Exists(id uint) (bool, error)
	Add(customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a GORM-backed CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Orders").First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *customerRepository) Add(customer *models.Customer) error {
	return r.db.Create(customer).Error
}
