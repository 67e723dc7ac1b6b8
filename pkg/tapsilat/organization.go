package tapsilat

import (
	"context"
	"net/http"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

func (c *Client) GetOrganizationSettings(ctx context.Context) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/organization/settings", nil, nil)
}

// HealthCheck reports API availability. It needs no API key.
func (c *Client) HealthCheck(ctx context.Context) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/health", nil, nil)
}
