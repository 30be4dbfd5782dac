package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/auth"
	"github.com/declanhart/order-management-api/config"
	"github.com/declanhart/order-management-api/controllers"
	"github.com/declanhart/order-management-api/middleware"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
	"github.com/declanhart/order-management-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Order Management API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(cfg, db)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires repositories, services and controllers and installs the
// route table. Every dependency is passed explicitly; the only process-wide
// state is the database handle and the token-signing configuration.
func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	// Collaborators
	jwtProvider := auth.NewJwtProvider(cfg)
	emailService := services.NewLogEmailService()

	// Services
	authService := services.NewAuthService(userRepo, jwtProvider)
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, customerRepo, emailService)
	invoiceService := services.NewInvoiceService(invoiceRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	customerController := controllers.NewCustomerController(customerService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	invoiceController := controllers.NewInvoiceController(invoiceService)

	router := gin.Default()
	router.Use(cors.Default())

	authenticated := middleware.EnsureValidToken(jwtProvider)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Public endpoints
		v1.POST("/users/register", authController.Register)
		v1.POST("/users/login", authController.Login)
		v1.GET("/products", productController.List)
		v1.GET("/products/:id", productController.Get)

		// Admin endpoints
		v1.POST("/products", authenticated, adminOnly, productController.Create)
		v1.PUT("/products/:id", authenticated, adminOnly, productController.Update)
		v1.GET("/orders", authenticated, adminOnly, orderController.List)
		v1.PUT("/orders/:id/status", authenticated, adminOnly, orderController.UpdateStatus)
		v1.GET("/invoices", authenticated, adminOnly, invoiceController.List)
		v1.GET("/invoices/:id", authenticated, adminOnly, invoiceController.Get)

		// Endpoints open to any authenticated role
		v1.POST("/customers", authenticated, customerController.Create)
		v1.GET("/customers/:id/orders", authenticated, customerController.GetOrders)
		v1.POST("/orders", authenticated, orderController.Create)
		v1.GET("/orders/:id", authenticated, orderController.Get)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order Management API is running",
	})
}
