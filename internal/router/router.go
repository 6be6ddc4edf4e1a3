// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/config"
	"github.com/orderdesk/backend/internal/handlers"
	"github.com/orderdesk/backend/internal/middleware"
	"github.com/orderdesk/backend/internal/services"
	"github.com/orderdesk/backend/internal/store"
)

func Initialize(s store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	clientService := services.NewClientService(s)
	productService := services.NewProductService(s)
	orderService := services.NewOrderService(s)
	analyticsService := services.NewAnalyticsService(s)
	exportService := services.NewExportService(s)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		clients := v1.Group("/clients")
		{
			clients.GET("", clientHandler.GetClients)
			clients.POST("", clientHandler.CreateClient)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/top-clients", analyticsHandler.GetTopClients)
			analytics.GET("/statistics", analyticsHandler.GetStatistics)
			analytics.GET("/top-products", analyticsHandler.GetTopProducts)
			analytics.GET("/network", analyticsHandler.GetClientNetwork)
			analytics.GET("/sales-over-time", analyticsHandler.GetSalesOverTime)
		}

		v1.GET("/export/json", exportHandler.ExportJSON)
		v1.GET("/export/csv", exportHandler.ExportCSV)
		v1.POST("/import/json", exportHandler.ImportJSON)
	}

	return r
}
