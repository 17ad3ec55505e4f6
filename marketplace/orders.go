package marketplace

import (
	"context"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// AllOrders fetches every order visible to the caller's token.
func (c *Client) AllOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, pathOrders, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UserOrders fetches the order list and keeps only orders whose
// userEmail exactly matches email. The filter is an exact string match,
// mirroring how the upstream scopes order history.
func (c *Client) UserOrders(ctx context.Context, token, email string) ([]models.Order, error) {
	orders, err := c.AllOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	filtered := orders[:0]
	for _, o := range orders {
		if o.UserEmail == email {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// PlaceOrderRequest is forwarded verbatim to the upstream order source.
type PlaceOrderRequest struct {
	Products      []models.OrderLineItem `json:"products"`
	DeliveryDate  string                 `json:"deliveryDate,omitempty"`
	Address       string                 `json:"address,omitempty"`
	PaymentMethod string                 `json:"paymentMethod,omitempty"`
}

// PlaceOrder submits a new order on behalf of the caller.
func (c *Client) PlaceOrder(ctx context.Context, token string, req PlaceOrderRequest) (models.Order, error) {
	var order models.Order
	if err := c.post(ctx, pathPlaceOrder, token, req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

type orderStatusRequest struct {
	OrderID string             `json:"orderId"`
	Status  models.OrderStatus `json:"status"`
}

// CancelOrder marks an order as Cancelled.
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	req := orderStatusRequest{OrderID: orderID, Status: models.OrderStatusCancelled}
	return c.post(ctx, pathCancelOrder, token, req, nil)
}

// UpdateOrderStatus moves an order to a new status (vendor/admin action).
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) error {
	req := orderStatusRequest{OrderID: orderID, Status: status}
	return c.post(ctx, pathOrderStatus, token, req, nil)
}
