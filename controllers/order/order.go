package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/models"
)

// -------- Handlers --------

// GetUserOrders returns the signed-in user's order history.
func GetUserOrders(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		token := c.GetString("auth_token")

		orders, err := mc.UserOrders(c.Request.Context(), token, email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

// PlaceOrder forwards a new order to the upstream order source.
func PlaceOrder(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req marketplace.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Products) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no products"})
			return
		}

		token := c.GetString("auth_token")
		order, err := mc.PlaceOrder(c.Request.Context(), token, req)
		if err != nil {
			status, msg := upstreamError(err, "Failed to place order")
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
	}
}

// CancelOrder cancels one of the signed-in user's orders. Ownership is
// checked here before the upstream call.
func CancelOrder(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		email := c.GetString("email")
		token := c.GetString("auth_token")
		ctx := c.Request.Context()

		orders, err := mc.UserOrders(ctx, token, email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		var found bool
		for _, o := range orders {
			if o.ID == orderID {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := mc.CancelOrder(ctx, token, orderID); err != nil {
			status, msg := upstreamError(err, "Failed to cancel order")
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order cancelled"})
	}
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to a new status (admin/vendor route).
func UpdateOrderStatus(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		token := c.GetHeader("Authorization")
		if err := mc.UpdateOrderStatus(c.Request.Context(), token, orderID, req.Status); err != nil {
			status, msg := upstreamError(err, "Failed to update order status")
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
	}
}

// -------- Helpers --------

func validStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusOrdered, models.OrderStatusAccepted,
		models.OrderStatusProcessing, models.OrderStatusDelivered, models.OrderStatusDeclined,
		models.OrderStatusCancelled:
		return true
	}
	return false
}

// upstreamError maps a marketplace error to a response status and
// message, surfacing the upstream's own message when it sent one.
func upstreamError(err error, fallback string) (int, string) {
	var apiErr *marketplace.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return http.StatusBadGateway, apiErr.Message
	}
	return http.StatusBadGateway, fallback
}
