package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/darkwizard3801/nexus-gateway/controllers/product"
	reviewControllers "github.com/darkwizard3801/nexus-gateway/controllers/review"
	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, mc *marketplace.Client) {
	// ──────────────── Browse ────────────────
	r.GET("/products", productcontroller.GetProducts(mc))
	r.GET("/products/:id", productcontroller.GetProductByID(mc))
	r.GET("/categories", productcontroller.GetCategories(mc))
	r.GET("/banners", productcontroller.GetBanners(mc))

	// ──────────────── Social proof ────────────────
	r.GET("/products/:id/ratings", reviewControllers.GetRatings(mc))
	r.GET("/testimonials", reviewControllers.GetTestimonials(mc))
	r.GET("/testimonials/sentiment", reviewControllers.GetTestimonialSentiment(mc))
	r.GET("/portfolios", reviewControllers.GetVendorPortfolios(mc))
}
