package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

// ListPendingProducts returns listings awaiting moderation.
func ListPendingProducts(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		pending, err := mc.PendingProducts(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch pending products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": pending})
	}
}

type moderationInput struct {
	ProductID string `json:"productId"`
}

// ApproveProduct publishes a pending listing.
func ApproveProduct(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moderationInput
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token := c.GetHeader("Authorization")
		if err := mc.ApproveProduct(c.Request.Context(), token, req.ProductID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to approve product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product approved"})
	}
}

// RejectProduct removes a pending listing.
func RejectProduct(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moderationInput
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token := c.GetHeader("Authorization")
		if err := mc.RejectProduct(c.Request.Context(), token, req.ProductID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reject product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product rejected"})
	}
}

// DisableProduct hides a published listing.
func DisableProduct(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moderationInput
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token := c.GetHeader("Authorization")
		if err := mc.DisableProduct(c.Request.Context(), token, req.ProductID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to disable product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product disabled"})
	}
}

type approveTestimonialInput struct {
	ID string `json:"_id"`
}

// ApproveTestimonial publishes a pending testimonial.
func ApproveTestimonial(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req approveTestimonialInput
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token := c.GetHeader("Authorization")
		if err := mc.ApproveTestimonial(c.Request.Context(), token, req.ID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to approve testimonial"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Testimonial approved"})
	}
}

// ListTestimonials returns all testimonials, pending ones included.
func ListTestimonials(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := mc.Testimonials(c.Request.Context(), false)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": testimonials})
	}
}
