package services

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
)

// ProductService manages the product catalog
type ProductService struct {
	products repositories.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(products repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// GetAllProducts lists the catalog
func (s *ProductService) GetAllProducts() ([]ProductResponse, *apperrors.Error) {
	products, err := s.products.GetAll()
	if err != nil {
		log.Printf("Failed to load products: %v", err)
		return nil, apperrors.Database("load products")
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, mapToProductResponse(&p))
	}
	return responses, nil
}

// GetProductByID returns a single product
func (s *ProductService) GetProductByID(id uint) (*ProductResponse, *apperrors.Error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		log.Printf("Failed to load product %d: %v", id, err)
		return nil, apperrors.Database("load product")
	}
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}

	response := mapToProductResponse(product)
	return &response, nil
}

// CreateProduct persists a new product. Field validation happens at the
// request boundary, not here.
func (s *ProductService) CreateProduct(name string, price decimal.Decimal, stock int) (*ProductResponse, *apperrors.Error) {
	product := &models.Product{Name: name, Price: price, Stock: stock}
	if err := s.products.Add(product); err != nil {
		log.Printf("Failed to create product %q: %v", name, err)
		return nil, apperrors.Database("create product")
	}

	response := mapToProductResponse(product)
	return &response, nil
}

// UpdateProduct overwrites name, price and stock in place
func (s *ProductService) UpdateProduct(id uint, name string, price decimal.Decimal, stock int) *apperrors.Error {
	product, err := s.products.GetByID(id)
	if err != nil {
		log.Printf("Failed to load product %d: %v", id, err)
		return apperrors.Database("load product")
	}
	if product == nil {
		return apperrors.ErrProductNotFound
	}

	product.Name = name
	product.Price = price
	product.Stock = stock

	if err := s.products.Update(product); err != nil {
		log.Printf("Failed to update product %d: %v", id, err)
		return apperrors.Database("update product")
	}
	return nil
}

func mapToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}
