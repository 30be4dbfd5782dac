package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/declanhart/order-management-api/services"
	"github.com/declanhart/order-management-api/utils"
)

// CreateProductRequest represents the request body for creating a product.
// Creation accepts any values; the service layer performs no validation.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" binding:"gte=0"`
}

// ProductController handles product catalog endpoints
type ProductController struct {
	products *services.ProductService
}

// NewProductController creates a new product controller
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List handles GET /api/v1/products
func (ctl *ProductController) List(c *gin.Context) {
	result, appErr := ctl.products.GetAllProducts()
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// Get handles GET /api/v1/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, appErr := ctl.products.GetProductByID(id)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// Create handles POST /api/v1/products (admin only)
func (ctl *ProductController) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	result, appErr := ctl.products.CreateProduct(req.Name, req.Price, req.Stock)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, result)
}

// Update handles PUT /api/v1/products/:id (admin only)
func (ctl *ProductController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	// The validator cannot inspect decimal values, so check the price here
	if !req.Price.IsPositive() {
		utils.RespondValidationError(c, "Price must be greater than zero.")
		return
	}

	if appErr := ctl.products.UpdateProduct(id, req.Name, req.Price, req.Stock); appErr != nil {
		utils.RespondError(c, appErr)
		return
	}
	utils.RespondNoContent(c)
}
