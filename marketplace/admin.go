package marketplace

import (
	"context"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// PendingProducts lists listings awaiting moderation.
func (c *Client) PendingProducts(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, pathPendingProducts, token, &products); err != nil {
		return nil, err
	}
	return products, nil
}

type moderationRequest struct {
	ProductID string `json:"productId"`
}

// ApproveProduct publishes a pending listing.
func (c *Client) ApproveProduct(ctx context.Context, token, productID string) error {
	return c.post(ctx, pathApproveProduct, token, moderationRequest{ProductID: productID}, nil)
}

// RejectProduct removes a pending listing.
func (c *Client) RejectProduct(ctx context.Context, token, productID string) error {
	return c.post(ctx, pathRejectProduct, token, moderationRequest{ProductID: productID}, nil)
}

// DisableProduct hides an already-published listing.
func (c *Client) DisableProduct(ctx context.Context, token, productID string) error {
	return c.post(ctx, pathDisableProduct, token, moderationRequest{ProductID: productID}, nil)
}
