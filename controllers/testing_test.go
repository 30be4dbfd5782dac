package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
	"github.com/declanhart/order-management-api/services"
)

// controllerFixture wires every controller over an in-memory database.
// Role gating lives in the middleware package and is tested there; these
// tests mount the handlers directly.
type controllerFixture struct {
	db     *gorm.DB
	router *gin.Engine
	email  *services.MockEmailService
}

func newControllerFixture(t *testing.T) *controllerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	email := services.NewMockEmailService()

	authController := NewAuthController(services.NewAuthService(userRepo, staticTokenGenerator{}))
	customerController := NewCustomerController(services.NewCustomerService(customerRepo))
	productController := NewProductController(services.NewProductService(productRepo))
	orderController := NewOrderController(services.NewOrderService(orderRepo, productRepo, customerRepo, email))
	invoiceController := NewInvoiceController(services.NewInvoiceService(invoiceRepo))

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/users/register", authController.Register)
		v1.POST("/users/login", authController.Login)
		v1.GET("/products", productController.List)
		v1.GET("/products/:id", productController.Get)
		v1.POST("/products", productController.Create)
		v1.PUT("/products/:id", productController.Update)
		v1.POST("/customers", customerController.Create)
		v1.GET("/customers/:id/orders", customerController.GetOrders)
		v1.POST("/orders", orderController.Create)
		v1.GET("/orders/:id", orderController.Get)
		v1.GET("/orders", orderController.List)
		v1.PUT("/orders/:id/status", orderController.UpdateStatus)
		v1.GET("/invoices", invoiceController.List)
		v1.GET("/invoices/:id", invoiceController.Get)
	}

	return &controllerFixture{db: db, router: router, email: email}
}

// staticTokenGenerator avoids signing-key configuration in controller tests
type staticTokenGenerator struct{}

func (staticTokenGenerator) Generate(user *models.User) (string, error) {
	return "controller-test-token", nil
}

func (f *controllerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the response envelope
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %q", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no data object: %q", w.Body.String())
	}
	return data
}

// seedProduct inserts a product directly
func (f *controllerFixture) seedProduct(t *testing.T, name, price string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

// seedCustomer inserts a customer directly
func (f *controllerFixture) seedCustomer(t *testing.T, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: email}
	if err := f.db.Create(customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}
