package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/models"
	"github.com/darkwizard3801/nexus-gateway/sentiment"
)

// GetRatings lists ratings for a product.
func GetRatings(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
			return
		}

		ratings, err := mc.Ratings(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch ratings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": ratings})
	}
}

type ratingInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Stars     float64 `json:"stars" binding:"required,min=1,max=5"`
	Comment   string  `json:"comment"`
}

// AddRating submits a rating as the signed-in user.
func AddRating(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ratingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rating := models.Rating{
			ProductID: input.ProductID,
			UserEmail: c.GetString("email"),
			Stars:     input.Stars,
			Comment:   input.Comment,
		}
		token := c.GetString("auth_token")
		if err := mc.AddRating(c.Request.Context(), token, rating); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit rating"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Rating submitted"})
	}
}

// GetTestimonials lists approved testimonials, each annotated with its
// sentiment label.
func GetTestimonials(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := mc.Testimonials(c.Request.Context(), true)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch testimonials"})
			return
		}

		type annotated struct {
			models.Testimonial
			Sentiment sentiment.Result `json:"sentiment"`
		}
		out := make([]annotated, 0, len(testimonials))
		for _, tm := range testimonials {
			out = append(out, annotated{Testimonial: tm, Sentiment: sentiment.Analyze(tm.Message)})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
	}
}

// GetTestimonialSentiment aggregates sentiment over all approved
// testimonials.
func GetTestimonialSentiment(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := mc.Testimonials(c.Request.Context(), true)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch testimonials"})
			return
		}

		messages := make([]string, 0, len(testimonials))
		for _, tm := range testimonials {
			messages = append(messages, tm.Message)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": sentiment.Summarize(messages)})
	}
}

// GetVendorPortfolios lists a vendor's portfolio entries.
func GetVendorPortfolios(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorEmail := c.Query("vendor")
		portfolios, err := mc.Portfolios(c.Request.Context(), vendorEmail)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch portfolios"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": portfolios})
	}
}
