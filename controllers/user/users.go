package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

// GET /user
func GetUser(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("auth_token")
		user, err := mc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch user details"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}
