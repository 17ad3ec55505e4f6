package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/darkwizard3801/nexus-gateway/controllers/cart"
	exportControllers "github.com/darkwizard3801/nexus-gateway/controllers/export"
	orderControllers "github.com/darkwizard3801/nexus-gateway/controllers/order"
	recommendationControllers "github.com/darkwizard3801/nexus-gateway/controllers/recommendation"
	reviewControllers "github.com/darkwizard3801/nexus-gateway/controllers/review"
	userControllers "github.com/darkwizard3801/nexus-gateway/controllers/user"
	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, mc *marketplace.Client, feed *orderControllers.OrderFeed) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(mc))

		// ──────────────── Recommendations ────────────────
		userGroup.GET("/recommendations", recommendationControllers.GetRecommendations(mc))
		userGroup.GET("/preferences", recommendationControllers.GetPreferenceProfile(mc))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(mc))
			cartGroup.POST("/", cartControllers.AddCartItem(mc))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(mc))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(mc))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.GetUserOrders(mc))
			orderGroup.POST("/place", orderControllers.PlaceOrder(mc))
			orderGroup.PUT("/:orderID/cancel", orderControllers.CancelOrder(mc))
			orderGroup.GET("/export-excel", exportControllers.ExportOrdersToExcel(mc))
		}

		// ──────────────── Ratings ────────────────
		userGroup.POST("/ratings", reviewControllers.AddRating(mc))
	}

	// Websocket endpoint for live order status updates. The connection
	// upgrade carries no JSON body, so it sits outside the JWT group.
	r.GET("/ws/orders", feed.Handler)
}
