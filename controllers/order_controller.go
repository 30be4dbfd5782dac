package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/services"
	"github.com/declanhart/order-management-api/utils"
)

// OrderItemRequest is one requested line in an order-creation request
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required,gt=0"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID    uint               `json:"customer_id" binding:"required,gt=0"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof='Credit Card' 'PayPal' 'Cash'"`
	Items         []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// OrderController handles order endpoints
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates a new order controller
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create handles POST /api/v1/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, apperrors.ErrInvalidItems)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, appErr := ctl.orders.CreateOrder(req.CustomerID, req.PaymentMethod, items)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, result)
}

// Get handles GET /api/v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, appErr := ctl.orders.GetOrderByID(id)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// List handles GET /api/v1/orders (admin only)
func (ctl *OrderController) List(c *gin.Context) {
	result, appErr := ctl.orders.GetAllOrders()
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// UpdateStatus handles PUT /api/v1/orders/:id/status (admin only)
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if appErr := ctl.orders.UpdateOrderStatus(id, req.Status); appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondNoContent(c)
}
