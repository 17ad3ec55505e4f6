package marketplace

import (
	"context"

	"github.com/darkwizard3801/nexus-gateway/models"
)

// CurrentUser resolves the caller's token to their profile. The email
// on the returned user is what scopes order history and recommendations.
func (c *Client) CurrentUser(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := c.get(ctx, pathCurrentUser, token, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
