package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// GET /user/cart
func GetUserCart(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("auth_token")
		items, err := mc.CartItems(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
	}
}

// POST /user/cart
func AddCartItem(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token := c.GetString("auth_token")
		item, err := mc.AddToCart(c.Request.Context(), token, input.ProductID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
	}
}

type updateCartInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PUT /user/cart/:item_id
func UpdateCartItem(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
			return
		}
		var input updateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token := c.GetString("auth_token")
		item, err := mc.UpdateCartItem(c.Request.Context(), token, itemID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
			return
		}

		token := c.GetString("auth_token")
		if err := mc.DeleteCartItem(c.Request.Context(), token, itemID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item deleted"})
	}
}
