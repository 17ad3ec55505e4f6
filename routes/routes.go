package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/darkwizard3801/nexus-gateway/controllers/order"
	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

// SetupRoutes is the single entry-point that wires up the public, user
// and admin route groups.
func SetupRoutes(r *gin.Engine, mc *marketplace.Client, feed *orderControllers.OrderFeed) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupPublicRoutes(r, mc)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, mc, feed)

	// 3️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, mc)
}
