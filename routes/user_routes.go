package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/controllers"
	"github.com/hagi-aesthetics/hagi-store/middleware"
)

// initUserRoutes wires the authenticated user surface.
func initUserRoutes(api *gin.RouterGroup) {
	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		// Gated download entitlement
		user.GET("/entitlement/:product", controllers.CheckPurchase)
		user.GET("/download/:product", controllers.DownloadVendorList)

		// Spin wheel
		spin := user.Group("/spin")
		{
			spin.GET("/credits", controllers.GetSpinCredits)
			spin.POST("/debit", controllers.DebitSpinCredit)
			spin.POST("/reward", controllers.GrantSpinReward)
			spin.POST("/topup/initiate", controllers.InitiateSpinTopup)
			spin.POST("/topup/verify", controllers.VerifySpinTopup)
		}

		// Coupons
		user.GET("/coupons", controllers.ListCoupons)
		user.POST("/coupons/redeem", controllers.RedeemCouponCode)

		// Orders
		orders := user.Group("/orders")
		{
			orders.POST("", controllers.RecordOrder)
			orders.GET("", controllers.ListOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.GET("/:id/invoice", controllers.DownloadInvoice)
		}
	}
}
