package services

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
)

// Discount tiers applied to the pre-discount order sum. Thresholds are
// exclusive: a sum of exactly 200 gets the 5% tier, exactly 100 no discount.
var (
	discountThresholdHigh = decimal.NewFromInt(200)
	discountThresholdLow  = decimal.NewFromInt(100)
	discountRateHigh      = decimal.NewFromFloat(0.90)
	discountRateLow       = decimal.NewFromFloat(0.95)
)

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// OrderService encodes the order-creation and status-transition workflow.
// It composes the customer, product and order repositories with the email
// notification collaborator.
type OrderService struct {
	orders    repositories.OrderRepository
	products  repositories.ProductRepository
	customers repositories.CustomerRepository
	email     EmailService
}

// NewOrderService creates a new order service
func NewOrderService(
	orders repositories.OrderRepository,
	products repositories.ProductRepository,
	customers repositories.CustomerRepository,
	email EmailService,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		customers: customers,
		email:     email,
	}
}

// CreateOrder validates the customer and every requested item, decrements
// product stock, applies the tiered discount to the accumulated total and
// persists the order together with its items and invoice.
//
// Stock is decremented and persisted per item as the loop progresses. A
// failure on a later item does not roll back earlier decrements; the request
// fails but the already-consumed stock stays consumed.
func (s *OrderService) CreateOrder(customerID uint, paymentMethod string, items []OrderItemInput) (*OrderResponse, *apperrors.Error) {
	exists, err := s.customers.Exists(customerID)
	if err != nil {
		log.Printf("Failed to check customer %d: %v", customerID, err)
		return nil, apperrors.Database("check customer")
	}
	if !exists {
		return nil, apperrors.ErrCustomerNotFound
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	totalAmount := decimal.Zero

	for _, item := range items {
		product, err := s.products.GetByID(item.ProductID)
		if err != nil {
			log.Printf("Failed to load product %d: %v", item.ProductID, err)
			return nil, apperrors.Database("load product")
		}
		if product == nil {
			return nil, apperrors.ErrProductNotFound
		}

		if product.Stock < item.Quantity {
			return nil, apperrors.ErrInsufficientStock
		}

		product.Stock -= item.Quantity
		if err := s.products.Update(product); err != nil {
			log.Printf("Failed to update stock for product %d: %v", product.ID, err)
			return nil, apperrors.Database("update product stock")
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Product:   *product,
			Quantity:  item.Quantity,
			UnitPrice: product.Price, // frozen copy of the price at order time
			Discount:  decimal.Zero,
		})

		totalAmount = totalAmount.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	totalAmount = applyDiscount(totalAmount)

	now := time.Now().UTC()
	order := &models.Order{
		CustomerID:    customerID,
		OrderDate:     now,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethod,
		Status:        "Pending",
		Items:         orderItems,
		Invoice: models.Invoice{
			InvoiceDate: now,
			TotalAmount: totalAmount,
		},
	}

	if err := s.orders.Add(order); err != nil {
		log.Printf("Failed to create order for customer %d: %v", customerID, err)
		return nil, apperrors.Database("create order")
	}

	response := mapToOrderResponse(order)
	return &response, nil
}

// GetOrderByID returns the order view with items and product names resolved
func (s *OrderService) GetOrderByID(id uint) (*OrderResponse, *apperrors.Error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		log.Printf("Failed to load order %d: %v", id, err)
		return nil, apperrors.Database("load order")
	}
	if order == nil {
		return nil, apperrors.ErrOrderNotFound
	}

	response := mapToOrderResponse(order)
	return &response, nil
}

// GetAllOrders returns every order with items and invoice populated
func (s *OrderService) GetAllOrders() ([]OrderResponse, *apperrors.Error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		log.Printf("Failed to load orders: %v", err)
		return nil, apperrors.Database("load orders")
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, mapToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// UpdateOrderStatus notifies the customer and then persists the new status.
// The customer lookup is best-effort: if the customer record is missing the
// notification is skipped, not failed. Any status string is accepted; no
// transition rules are enforced.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) *apperrors.Error {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		log.Printf("Failed to load order %d: %v", orderID, err)
		return apperrors.Database("load order")
	}
	if order == nil {
		return apperrors.ErrOrderNotFound
	}

	customer, err := s.customers.GetByID(order.CustomerID)
	if err != nil {
		log.Printf("Failed to load customer %d for order %d: %v", order.CustomerID, orderID, err)
		customer = nil
	}
	if customer != nil {
		// Notify before persisting the status change
		if err := s.email.SendOrderStatusChangeEmail(customer.Email, orderID, status); err != nil {
			log.Printf("Failed to send status notification for order %d: %v", orderID, err)
		}
	}

	if err := s.orders.UpdateStatus(orderID, status); err != nil {
		log.Printf("Failed to update status for order %d: %v", orderID, err)
		return apperrors.Database("update order status")
	}

	return nil
}

// applyDiscount applies the tiered discount once, after all items are summed
func applyDiscount(total decimal.Decimal) decimal.Decimal {
	switch {
	case total.GreaterThan(discountThresholdHigh):
		return total.Mul(discountRateHigh)
	case total.GreaterThan(discountThresholdLow):
		return total.Mul(discountRateLow)
	default:
		return total
	}
}

// mapToOrderResponse builds the order view, resolving each item's product
// display name through the product reference
func mapToOrderResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		name := item.Product.Name
		if name == "" {
			name = "Unknown Product"
		}
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
		})
	}

	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		OrderDate:     order.OrderDate,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Items:         items,
	}
}
