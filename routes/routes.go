package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/controllers"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// API version group
	api := router.Group("/v1")
	{
		// Public catalog reads
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/:id", controllers.GetProduct)

		// Payment provider callbacks (signature-verified, no session)
		api.POST("/webhooks/payment", controllers.HandlePaymentWebhook)

		// Everything user-scoped
		initUserRoutes(api)
	}

	return router
}
