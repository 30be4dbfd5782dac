package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/auth"
	"github.com/declanhart/order-management-api/config"
	"github.com/declanhart/order-management-api/controllers"
	"github.com/declanhart/order-management-api/middleware"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
	"github.com/declanhart/order-management-api/services"
)

// TestConfig returns a configuration suitable for in-process test servers
func TestConfig() *config.Config {
	return &config.Config{
		DatabaseURL:      "file::memory:",
		Port:             "8080",
		GoEnv:            "test",
		JWTSecret:        "integration-test-secret",
		JWTIssuer:        "order-management-api",
		JWTAudience:      "order-management-clients",
		JWTExpiryMinutes: 60,
	}
}

// SetupDB creates an in-memory database with the full schema migrated
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

// IssueToken generates a signed token for a synthetic user
func IssueToken(t *testing.T, provider *auth.JwtProvider, id uint, username, role string) string {
	t.Helper()

	token, err := provider.Generate(&models.User{ID: id, Username: username, Role: role})
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// NewAppRouter wires the full application against the given database, with
// the real token middleware. The email collaborator is injectable so suites
// can observe notifications.
func NewAppRouter(db *gorm.DB, provider *auth.JwtProvider, email services.EmailService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	authService := services.NewAuthService(userRepo, provider)
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, customerRepo, email)
	invoiceService := services.NewInvoiceService(invoiceRepo)

	authController := controllers.NewAuthController(authService)
	customerController := controllers.NewCustomerController(customerService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	invoiceController := controllers.NewInvoiceController(invoiceService)

	router := gin.New()
	router.Use(gin.Recovery())

	authenticated := middleware.EnsureValidToken(provider)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"success": true, "message": "Order Management API is running"})
		})

		v1.POST("/users/register", authController.Register)
		v1.POST("/users/login", authController.Login)
		v1.GET("/products", productController.List)
		v1.GET("/products/:id", productController.Get)

		v1.POST("/products", authenticated, adminOnly, productController.Create)
		v1.PUT("/products/:id", authenticated, adminOnly, productController.Update)
		v1.GET("/orders", authenticated, adminOnly, orderController.List)
		v1.PUT("/orders/:id/status", authenticated, adminOnly, orderController.UpdateStatus)
		v1.GET("/invoices", authenticated, adminOnly, invoiceController.List)
		v1.GET("/invoices/:id", authenticated, adminOnly, invoiceController.Get)

		v1.POST("/customers", authenticated, customerController.Create)
		v1.GET("/customers/:id/orders", authenticated, customerController.GetOrders)
		v1.POST("/orders", authenticated, orderController.Create)
		v1.GET("/orders/:id", authenticated, orderController.Get)
	}

	return router
}
