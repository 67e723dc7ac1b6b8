package tapsilat

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

func (c *Client) GetOrderTerm(ctx context.Context, termReferenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/order/term/"+url.PathEscape(termReferenceID), nil, nil)
}

func (c *Client) CreateOrderTerm(ctx context.Context, term entities.OrderPaymentTermCreateRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/term", nil, term)
}

func (c *Client) UpdateOrderTerm(ctx context.Context, term entities.OrderPaymentTermUpdateRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/term/update", nil, term)
}

func (c *Client) DeleteOrderTerm(ctx context.Context, orderID, termReferenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/term/delete", nil, map[string]string{
		"order_id":          orderID,
		"term_reference_id": termReferenceID,
	})
}

func (c *Client) RefundOrderTerm(ctx context.Context, refund entities.OrderTermRefundRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/term/refund", nil, refund)
}

// TerminateOrderTerm sends reason only when it is non-empty.
func (c *Client) TerminateOrderTerm(ctx context.Context, termReferenceID, reason string) (entities.Raw, error) {
	body := map[string]string{"term_reference_id": termReferenceID}
	if reason != "" {
		body["reason"] = reason
	}
	return c.execute(ctx, http.MethodPost, "/order/term/terminate", nil, body)
}
