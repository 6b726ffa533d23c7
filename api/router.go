package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_vendas/internal/auth"
	"api_vendas/internal/customers"
	"api_vendas/internal/products"
	"api_vendas/internal/sales"
)

// Services bundles the application services the HTTP layer exposes.
type Services struct {
	Sales     *sales.Service
	Products  *products.Service
	Customers *customers.Service
	Auth      *auth.Service
}

// InitRoutes registers all endpoints on the given Gin engine. The auth
// endpoints are public; the sales, products and customers groups require a
// Bearer token.
func InitRoutes(e *gin.Engine, logger *zap.Logger, svcs Services) {
	salesHandler := NewSalesHandler(svcs.Sales, logger)
	productsHandler := NewProductsHandler(svcs.Products, logger)
	customersHandler := NewCustomersHandler(svcs.Customers, logger)
	authHandler := NewAuthHandler(svcs.Auth, logger)

	e.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "sales API up",
			"endpoints": gin.H{
				"auth":      "/auth",
				"customers": "/customers",
				"products":  "/products",
				"sales":     "/sales",
			},
		})
	})

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", authHandler.handleRegister)
		authGroup.POST("/login", authHandler.handleLogin)
		authGroup.POST("/logout", authHandler.handleLogout)
		authGroup.GET("/verify", AuthRequired(svcs.Auth), authHandler.handleVerify)
		authGroup.GET("/profile", AuthRequired(svcs.Auth), authHandler.handleProfile)
		authGroup.GET("/users", AuthRequired(svcs.Auth), RequireAdmin(), authHandler.handleListUsers)
	}

	protected := e.Group("/", AuthRequired(svcs.Auth))
	{
		protected.GET("/customers", customersHandler.handleList)
		protected.POST("/customers", customersHandler.handleCreate)
		protected.GET("/customers/:id", customersHandler.handleGet)
		protected.PUT("/customers/:id", customersHandler.handleUpdate)
		protected.DELETE("/customers/:id", customersHandler.handleDelete)

		protected.GET("/products", productsHandler.handleList)
		protected.POST("/products", productsHandler.handleCreate)
		protected.GET("/products/:id", productsHandler.handleGet)
		protected.PUT("/products/:id", productsHandler.handleUpdate)
		protected.DELETE("/products/:id", productsHandler.handleDelete)

		protected.GET("/sales", salesHandler.handleList)
		protected.POST("/sales", salesHandler.handleCreate)
		protected.GET("/sales/:id", salesHandler.handleGet)
		protected.DELETE("/sales/:id", salesHandler.handleDelete)
	}

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
