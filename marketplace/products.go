package marketplace

import (
	"context"
	"net/url"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// Products fetches the full catalog. The list is returned as-is; any
// vendor or category filtering happens at the caller.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, pathProducts, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID fetches one product.
func (c *Client) ProductByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	path := pathProductDetail + "?id=" + url.QueryEscape(id)
	if err := c.get(ctx, path, "", &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Banners fetches the promotional banners shown on the storefront.
func (c *Client) Banners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := c.get(ctx, pathBanners, "", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// Portfolios fetches a vendor's portfolio entries. An empty vendorEmail
// fetches all portfolios.
func (c *Client) Portfolios(ctx context.Context, vendorEmail string) ([]models.Portfolio, error) {
	path := pathPortfolios
	if vendorEmail != "" {
		path += "?vendorEmail=" + url.QueryEscape(vendorEmail)
	}
	var portfolios []models.Portfolio
	if err := c.get(ctx, path, "", &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}
