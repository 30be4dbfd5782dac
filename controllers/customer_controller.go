package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/services"
	"github.com/declanhart/order-management-api/utils"
)

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
}

// CustomerController handles customer endpoints
type CustomerController struct {
	customers *services.CustomerService
}

// NewCustomerController creates a new customer controller
func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// Create handles POST /api/v1/customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	result, appErr := ctl.customers.CreateCustomer(req.Name, req.Email)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, result)
}

// GetOrders handles GET /api/v1/customers/:id/orders
func (ctl *CustomerController) GetOrders(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, appErr := ctl.customers.GetCustomerOrders(id)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result)
}
