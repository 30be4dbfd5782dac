package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
)

// ProductRepository provides access to the product catalog.
type ProductRepository interface {
	// GetByID returns the product, or nil when no such product exists.
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Add(product *models.Product) error
	Update(product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a GORM-backed ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Add(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
