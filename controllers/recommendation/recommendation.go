package recommendationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/recommend"
)

// GetRecommendations runs the full recommendation chain for the
// signed-in user: order history -> preference profile -> catalog ->
// ranked list. Each request recomputes from fresh upstream fetches.
func GetRecommendations(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		token := c.GetString("auth_token")
		ctx := c.Request.Context()

		orders, err := mc.UserOrders(ctx, token, email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error":   "Unable to compute recommendations",
			})
			return
		}

		profile := recommend.AnalyzePreferences(orders)
		if !profile.HasHistory() {
			// Nothing to score against: the storefront shows a
			// start-shopping prompt instead.
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    []recommend.ScoredProduct{},
				"message": "Start shopping to get personalised recommendations",
			})
			return
		}

		catalog, err := mc.Products(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error":   "Unable to compute recommendations",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    recommend.Recommend(catalog, profile),
		})
	}
}

// GetPreferenceProfile exposes the derived profile for the signed-in
// user. The profile is rebuilt on every call and never stored.
func GetPreferenceProfile(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		token := c.GetString("auth_token")

		orders, err := mc.UserOrders(c.Request.Context(), token, email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Failed to fetch order history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    recommend.AnalyzePreferences(orders),
		})
	}
}
