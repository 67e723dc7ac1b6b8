package tapsilat

import (
	"context"
	"net/http"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

func (c *Client) CreateSubscription(ctx context.Context, sub entities.SubscriptionCreateRequest) (entities.SubscriptionCreateResponse, error) {
	if err := sub.Validate(); err != nil {
		return entities.SubscriptionCreateResponse{}, err
	}
	var out entities.SubscriptionCreateResponse
	if err := c.executeInto(ctx, http.MethodPost, "/subscription/create", sub, &out); err != nil {
		return entities.SubscriptionCreateResponse{}, err
	}
	return out, nil
}

func (c *Client) GetSubscription(ctx context.Context, req entities.SubscriptionGetRequest) (entities.SubscriptionDetail, error) {
	var out entities.SubscriptionDetail
	if err := c.executeInto(ctx, http.MethodPost, "/subscription", req, &out); err != nil {
		return entities.SubscriptionDetail{}, err
	}
	return out, nil
}

func (c *Client) CancelSubscription(ctx context.Context, req entities.SubscriptionCancelRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/subscription/cancel", nil, req)
}

func (c *Client) ListSubscriptions(ctx context.Context, page, perPage int) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/subscription/list", pageQuery(page, perPage), nil)
}

// RedirectSubscription returns the hosted page where the subscriber updates
// their payment method.
func (c *Client) RedirectSubscription(ctx context.Context, req entities.SubscriptionRedirectRequest) (entities.SubscriptionRedirectResponse, error) {
	var out entities.SubscriptionRedirectResponse
	if err := c.executeInto(ctx, http.MethodPost, "/subscription/redirect", req, &out); err != nil {
		return entities.SubscriptionRedirectResponse{}, err
	}
	return out, nil
}
