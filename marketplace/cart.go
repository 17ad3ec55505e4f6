package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// CartItems fetches the caller's cart.
func (c *Client) CartItems(ctx context.Context, token string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.get(ctx, pathCartItems, token, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddToCart adds a product to the caller's cart.
func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) (models.CartItem, error) {
	var item models.CartItem
	req := addToCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.post(ctx, pathAddToCart, token, req, &item); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

type updateCartRequest struct {
	ID       string `json:"_id"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItem changes the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (models.CartItem, error) {
	var item models.CartItem
	req := updateCartRequest{ID: itemID, Quantity: quantity}
	if err := c.post(ctx, pathUpdateCartItem, token, req, &item); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// DeleteCartItem removes a cart line.
func (c *Client) DeleteCartItem(ctx context.Context, token, itemID string) error {
	path := pathDeleteCartItem + "?id=" + url.QueryEscape(itemID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
