package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/services"
	"github.com/declanhart/order-management-api/utils"
)

// InvoiceController handles invoice endpoints (admin only)
type InvoiceController struct {
	invoices *services.InvoiceService
}

// NewInvoiceController creates a new invoice controller
func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

// Get handles GET /api/v1/invoices/:id
func (ctl *InvoiceController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, appErr := ctl.invoices.GetInvoiceByID(id)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// List handles GET /api/v1/invoices
func (ctl *InvoiceController) List(c *gin.Context) {
	result, appErr := ctl.invoices.GetAllInvoices()
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}
