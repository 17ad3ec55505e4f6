package marketplace

import (
	"context"
	"net/url"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// Ratings fetches the ratings for one product.
func (c *Client) Ratings(ctx context.Context, productID string) ([]models.Rating, error) {
	path := pathRatings + "?productId=" + url.QueryEscape(productID)
	var ratings []models.Rating
	if err := c.get(ctx, path, "", &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// AddRating submits a rating on behalf of the caller.
func (c *Client) AddRating(ctx context.Context, token string, rating models.Rating) error {
	return c.post(ctx, pathAddRating, token, rating, nil)
}

// Testimonials fetches testimonials. When approvedOnly is set, only
// testimonials already approved by an admin are returned.
func (c *Client) Testimonials(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error) {
	path := pathTestimonials
	if approvedOnly {
		path += "?approved=true"
	}
	var testimonials []models.Testimonial
	if err := c.get(ctx, path, "", &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

type approveTestimonialRequest struct {
	ID string `json:"_id"`
}

// ApproveTestimonial publishes a pending testimonial (admin action).
func (c *Client) ApproveTestimonial(ctx context.Context, token, id string) error {
	return c.post(ctx, pathApproveTestimonial, token, approveTestimonialRequest{ID: id}, nil)
}
