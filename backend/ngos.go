package backend

import (
	"context"
	"net/http"
	"net/url"

	"ngoconnect-web/models"
)

// NGOsByCategory lists the NGOs registered under a category value.
func (c *Client) NGOsByCategory(ctx context.Context, category string) ([]models.Organisation, error) {
	var ngos []models.Organisation
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/ngo/:category",
		path:   "/api/ngo/" + url.PathEscape(category),
	}, &ngos)
	return ngos, err
}
