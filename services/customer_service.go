package services

import (
	"log"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
)

// CustomerService manages customers and their order history
type CustomerService struct {
	customers repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CreateCustomer persists a new customer with an empty order list. There is
// no uniqueness constraint on customers.
func (s *CustomerService) CreateCustomer(name, email string) (*CustomerResponse, *apperrors.Error) {
	customer := &models.Customer{Name: name, Email: email}
	if err := s.customers.Add(customer); err != nil {
		log.Printf("Failed to create customer %q: %v", name, err)
		return nil, apperrors.Database("create customer")
	}

	return &CustomerResponse{
		ID:     customer.ID,
		Name:   customer.Name,
		Email:  customer.Email,
		Orders: []OrderResponse{},
	}, nil
}

// GetCustomerOrders returns the customer with its historical orders. Order
// items are omitted from this view.
func (s *CustomerService) GetCustomerOrders(id uint) (*CustomerResponse, *apperrors.Error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		log.Printf("Failed to load customer %d: %v", id, err)
		return nil, apperrors.Database("load customer")
	}
	if customer == nil {
		return nil, apperrors.ErrCustomerNotFound
	}

	orders := make([]OrderResponse, 0, len(customer.Orders))
	for _, o := range customer.Orders {
		orders = append(orders, OrderResponse{
			ID:            o.ID,
			CustomerID:    o.CustomerID,
			OrderDate:     o.OrderDate,
			TotalAmount:   o.TotalAmount,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
			Items:         []OrderItemResponse{},
		})
	}

	return &CustomerResponse{
		ID:     customer.ID,
		Name:   customer.Name,
		Email:  customer.Email,
		Orders: orders,
	}, nil
}
