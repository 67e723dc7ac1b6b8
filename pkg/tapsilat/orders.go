package tapsilat

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
	"github.com/tapsilat/tapsilat-go/pkg/validators"
)

// CreateOrder validates and normalizes the order, submits it, and then tries
// once to attach the checkout URL from a follow-up GetOrder.
//
// The buyer's GSM number and the enabled installments are normalized on a
// copy; order itself is never modified. A failed follow-up is ignored and the
// create response is returned unchanged.
func (c *Client) CreateOrder(ctx context.Context, order entities.OrderCreateRequest) (entities.OrderResponse, error) {
	if err := order.Validate(); err != nil {
		return entities.OrderResponse{}, err
	}

	payload, err := normalizeOrder(order)
	if err != nil {
		return entities.OrderResponse{}, err
	}

	raw, err := c.execute(ctx, http.MethodPost, "/order/create", nil, payload)
	if err != nil {
		return entities.OrderResponse{}, err
	}
	resp := entities.NewOrderResponse(raw.Value())

	ref := resp.ReferenceID()
	if ref == "" {
		return resp, nil
	}
	checkoutURL, err := c.GetCheckoutURL(ctx, ref)
	if err != nil || checkoutURL == "" {
		return resp, nil
	}
	return resp.WithCheckoutURL(checkoutURL), nil
}

func normalizeOrder(order entities.OrderCreateRequest) (entities.OrderCreateRequest, error) {
	payload := order

	if gsm := order.Buyer.GSMNumber; gsm != nil && *gsm != "" {
		cleaned, err := validators.ValidateGSMNumber(*gsm)
		if err != nil {
			return entities.OrderCreateRequest{}, err
		}
		payload.Buyer.GSMNumber = &cleaned
	}

	if len(order.EnabledInstallments) > 0 {
		installments, err := validators.ValidateInstallments(validators.JoinInstallments(order.EnabledInstallments))
		if err != nil {
			return entities.OrderCreateRequest{}, err
		}
		payload.EnabledInstallments = installments
	}

	return payload, nil
}

func (c *Client) GetOrder(ctx context.Context, referenceID string) (entities.OrderResponse, error) {
	raw, err := c.execute(ctx, http.MethodGet, "/order/"+url.PathEscape(referenceID), nil, nil)
	if err != nil {
		return entities.OrderResponse{}, err
	}
	return entities.NewOrderResponse(raw.Value()), nil
}

func (c *Client) GetOrderByConversationID(ctx context.Context, conversationID string) (entities.OrderResponse, error) {
	raw, err := c.execute(ctx, http.MethodGet, "/order/conversation/"+url.PathEscape(conversationID), nil, nil)
	if err != nil {
		return entities.OrderResponse{}, err
	}
	return entities.NewOrderResponse(raw.Value()), nil
}

// GetOrderList pages through orders. Zero-valued filters are not sent.
func (c *Client) GetOrderList(ctx context.Context, query entities.OrderListQuery) (entities.Raw, error) {
	q := pageQuery(query.Page, query.PerPage)
	for key, value := range map[string]string{
		"start_date":           query.StartDate,
		"end_date":             query.EndDate,
		"organization_id":      query.OrganizationID,
		"related_reference_id": query.RelatedReferenceID,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}
	return c.execute(ctx, http.MethodGet, "/order/list", q, nil)
}

// GetOrders is the buyer-scoped listing; buyerID is sent only when set.
func (c *Client) GetOrders(ctx context.Context, page, perPage int, buyerID string) (entities.Raw, error) {
	q := pageQuery(page, perPage)
	if buyerID != "" {
		q.Set("buyer_id", buyerID)
	}
	return c.execute(ctx, http.MethodGet, "/order/list", q, nil)
}

func (c *Client) GetOrderSubmerchants(ctx context.Context, page, perPage int) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/order/submerchants", pageQuery(page, perPage), nil)
}

// GetCheckoutURL returns "" when the order carries no checkout_url.
func (c *Client) GetCheckoutURL(ctx context.Context, referenceID string) (string, error) {
	order, err := c.GetOrder(ctx, referenceID)
	if err != nil {
		return "", err
	}
	return order.CheckoutURL(), nil
}

func (c *Client) CancelOrder(ctx context.Context, referenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/cancel", nil, map[string]string{"reference_id": referenceID})
}

func (c *Client) RefundOrder(ctx context.Context, refund entities.RefundOrderRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/refund", nil, refund)
}

func (c *Client) RefundAllOrder(ctx context.Context, referenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/refund-all", nil, map[string]string{"reference_id": referenceID})
}

func (c *Client) OrderTerminate(ctx context.Context, referenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/terminate", nil, map[string]string{"reference_id": referenceID})
}

// OrderManualCallback asks the API to replay the payment callback.
func (c *Client) OrderManualCallback(ctx context.Context, referenceID, conversationID string) (entities.Raw, error) {
	body := map[string]string{"reference_id": referenceID}
	if conversationID != "" {
		body["conversation_id"] = conversationID
	}
	return c.execute(ctx, http.MethodPost, "/order/manual-callback", nil, body)
}

func (c *Client) OrderRelatedUpdate(ctx context.Context, referenceID, relatedReferenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/related-update", nil, map[string]string{
		"reference_id":         referenceID,
		"related_reference_id": relatedReferenceID,
	})
}

func (c *Client) OrderAccounting(ctx context.Context, req entities.OrderAccountingRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/accounting", nil, req)
}

func (c *Client) OrderPostAuth(ctx context.Context, req entities.OrderPostAuthRequest) (entities.Raw, error) {
	return c.execute(ctx, http.MethodPost, "/order/postauth", nil, req)
}

// GetOrderPaymentDetails uses the conversation-scoped POST lookup when
// conversationID is set and the plain GET otherwise.
func (c *Client) GetOrderPaymentDetails(ctx context.Context, referenceID, conversationID string) (entities.Raw, error) {
	if conversationID != "" {
		return c.execute(ctx, http.MethodPost, "/order/payment-details", nil, map[string]string{
			"conversation_id": conversationID,
			"reference_id":    referenceID,
		})
	}
	return c.execute(ctx, http.MethodGet, "/order/"+url.PathEscape(referenceID)+"/payment-details", nil, nil)
}

func (c *Client) GetOrderStatus(ctx context.Context, referenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/order/"+url.PathEscape(referenceID)+"/status", nil, nil)
}

func (c *Client) GetOrderTransactions(ctx context.Context, referenceID string) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/order/"+url.PathEscape(referenceID)+"/transactions", nil, nil)
}

func (c *Client) GetSystemOrderStatuses(ctx context.Context) (entities.Raw, error) {
	return c.execute(ctx, http.MethodGet, "/system/order-statuses", nil, nil)
}
