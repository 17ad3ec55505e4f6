package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/darkwizard3801/nexus-gateway/controllers/admin"
	exportControllers "github.com/darkwizard3801/nexus-gateway/controllers/export"
	orderControllers "github.com/darkwizard3801/nexus-gateway/controllers/order"
	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, mc *marketplace.Client) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Listing Moderation ───────────
		moderation := adminGroup.Group("/products")
		{
			moderation.GET("/pending", adminController.ListPendingProducts(mc))
			moderation.POST("/approve", adminController.ApproveProduct(mc))
			moderation.POST("/reject", adminController.RejectProduct(mc))
			moderation.POST("/disable", adminController.DisableProduct(mc))
			moderation.GET("/export-excel", exportControllers.ExportProductsToExcel(mc))
		}

		// ─────────── Testimonial Moderation ───────────
		testimonialMgmt := adminGroup.Group("/testimonials")
		{
			testimonialMgmt.GET("/", adminController.ListTestimonials(mc))
			testimonialMgmt.POST("/approve", adminController.ApproveTestimonial(mc))
		}

		// ─────────── Order Management ───────────
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatus(mc))
	}
}
