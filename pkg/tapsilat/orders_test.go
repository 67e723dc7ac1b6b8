package tapsilat

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapsilat/tapsilat-go/pkg"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

func sampleOrder() entities.OrderCreateRequest {
	buyer := entities.NewBuyer("John", "Doe")
	buyer.Email = entities.Ptr("john@example.com")
	return entities.NewOrderCreateRequest(100, "TRY", "tr", buyer)
}

func TestCreateOrder_EnrichesCheckoutURL(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/create", http.StatusOK, `{"reference_id":"ref-1","order_id":"ord-1"}`)
	api.on(http.MethodGet, "/api/v1/order/ref-1", http.StatusOK, `{"reference_id":"ref-1","checkout_url":"https://pay.test/ref-1"}`)

	res, err := api.client().CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, "ref-1", res.ReferenceID())
	assert.Equal(t, "ord-1", res.OrderID())
	assert.Equal(t, "https://pay.test/ref-1", res.CheckoutURL())

	require.Len(t, api.requests, 2)
	create := api.requests[0]
	assert.Equal(t, http.MethodPost, create.Method)
	assert.Equal(t, "application/json", create.Header.Get("Content-Type"))
	assert.Equal(t, float64(100), create.Body["amount"])
	assert.Equal(t, "TRY", create.Body["currency"])
	assert.NotContains(t, create.Body, "enabled_installments")
	assert.NotContains(t, create.Body, "basket_items")
}

func TestCreateOrder_EnrichmentFailureIsSwallowed(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/create", http.StatusOK, `{"reference_id":"ref-1"}`)
	api.on(http.MethodGet, "/api/v1/order/ref-1", http.StatusInternalServerError, `{"code":1,"error":"boom"}`)

	res, err := api.client().CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, "ref-1", res.ReferenceID())
	assert.Empty(t, res.CheckoutURL())
	_, present := res.Get("checkout_url")
	assert.False(t, present)
}

func TestCreateOrder_NoReferenceSkipsEnrichment(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/create", http.StatusOK, `{"status":"queued"}`)

	_, err := api.client().CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.Len(t, api.requests, 1)
}

func TestCreateOrder_NormalizesWithoutMutatingCaller(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/create", http.StatusOK, `{}`)

	order := sampleOrder()
	order.Buyer.GSMNumber = entities.Ptr("+90 (555) 123-45-67")
	order.EnabledInstallments = []int{1, 3, 6}

	_, err := api.client().CreateOrder(context.Background(), order)
	require.NoError(t, err)

	body := api.last().Body
	buyer := body["buyer"].(map[string]any)
	assert.Equal(t, "+905551234567", buyer["gsm_number"])
	assert.Equal(t, []any{float64(1), float64(3), float64(6)}, body["enabled_installments"])

	assert.Equal(t, "+90 (555) 123-45-67", *order.Buyer.GSMNumber)
	assert.Equal(t, []int{1, 3, 6}, order.EnabledInstallments)
}

func TestCreateOrder_EmptyInstallmentsAreSent(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/create", http.StatusOK, `{}`)

	order := sampleOrder()
	order.EnabledInstallments = []int{}

	_, err := api.client().CreateOrder(context.Background(), order)
	require.NoError(t, err)

	body := api.last().Body
	require.Contains(t, body, "enabled_installments")
	assert.Equal(t, []any{}, body["enabled_installments"])
}

func TestCreateOrder_ValidationStopsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entities.OrderCreateRequest)
		message string
	}{
		{"missing locale", func(o *entities.OrderCreateRequest) { o.Locale = "" }, "locale is required"},
		{"bad gsm", func(o *entities.OrderCreateRequest) { o.Buyer.GSMNumber = entities.Ptr("12ab") }, "Invalid phone number format: 12ab"},
		{"installment out of range", func(o *entities.OrderCreateRequest) { o.EnabledInstallments = []int{1, 15} }, "Installment value '15' is invalid. All installment values must be between 1 and 12 (inclusive)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			order := sampleOrder()
			tt.mutate(&order)

			_, err := api.client().CreateOrder(context.Background(), order)
			apiErr := requireAPIError(t, err)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.Equal(t, 0, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.ErrorIs(t, err, pkg.ErrInvalidArgument)
			assert.Empty(t, api.requests)
		})
	}
}

func TestGetOrder_ServerError(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodGet, "/api/v1/order/missing", http.StatusBadRequest, `{"code":101160,"error":"ORDER_NOT_FOUND"}`)

	_, err := api.client().GetOrder(context.Background(), "missing")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, 101160, apiErr.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", apiErr.Message)
	assert.False(t, apiErr.IsValidation())
}

func TestGetOrderList_OmitsEmptyFilters(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodGet, "/api/v1/order/list", http.StatusOK, `{"rows":[],"total":0}`)
	c := api.client()

	_, err := c.GetOrderList(context.Background(), entities.DefaultOrderListQuery())
	require.NoError(t, err)
	q := api.last().Query
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "10", q.Get("per_page"))
	assert.Len(t, q, 2)

	_, err = c.GetOrderList(context.Background(), entities.OrderListQuery{
		Page:           2,
		StartDate:      "2024-01-01",
		OrganizationID: "org-9",
	})
	require.NoError(t, err)
	q = api.last().Query
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "2024-01-01", q.Get("start_date"))
	assert.Equal(t, "org-9", q.Get("organization_id"))
	assert.NotContains(t, q, "per_page")
	assert.NotContains(t, q, "end_date")
	assert.NotContains(t, q, "related_reference_id")
}

func TestGetOrders_BuyerFilter(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodGet, "/api/v1/order/list", http.StatusOK, `{}`)
	c := api.client()

	_, err := c.GetOrders(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.NotContains(t, api.last().Query, "buyer_id")

	_, err = c.GetOrders(context.Background(), 1, 10, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", api.last().Query.Get("buyer_id"))
}

func TestGetCheckoutURL(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodGet, "/api/v1/order/ref-1", http.StatusOK, `{"checkout_url":"https://pay.test/x"}`)
	api.on(http.MethodGet, "/api/v1/order/ref-2", http.StatusOK, `{"reference_id":"ref-2"}`)
	c := api.client()

	u, err := c.GetCheckoutURL(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/x", u)

	u, err = c.GetCheckoutURL(context.Background(), "ref-2")
	require.NoError(t, err)
	assert.Empty(t, u)
}

func TestOrderOperations_Endpoints(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		method string
		path   string
		call   func(*Client) error
		body   map[string]any
	}{
		{"get by conversation", http.MethodGet, "/api/v1/order/conversation/conv-1", func(c *Client) error {
			_, err := c.GetOrderByConversationID(ctx, "conv-1")
			return err
		}, nil},
		{"cancel", http.MethodPost, "/api/v1/order/cancel", func(c *Client) error {
			_, err := c.CancelOrder(ctx, "ref-1")
			return err
		}, map[string]any{"reference_id": "ref-1"}},
		{"refund", http.MethodPost, "/api/v1/order/refund", func(c *Client) error {
			_, err := c.RefundOrder(ctx, entities.NewRefundOrderRequest(25.5, "ref-1"))
			return err
		}, map[string]any{"amount": 25.5, "reference_id": "ref-1"}},
		{"refund all", http.MethodPost, "/api/v1/order/refund-all", func(c *Client) error {
			_, err := c.RefundAllOrder(ctx, "ref-1")
			return err
		}, map[string]any{"reference_id": "ref-1"}},
		{"terminate", http.MethodPost, "/api/v1/order/terminate", func(c *Client) error {
			_, err := c.OrderTerminate(ctx, "ref-1")
			return err
		}, map[string]any{"reference_id": "ref-1"}},
		{"manual callback without conversation", http.MethodPost, "/api/v1/order/manual-callback", func(c *Client) error {
			_, err := c.OrderManualCallback(ctx, "ref-1", "")
			return err
		}, map[string]any{"reference_id": "ref-1"}},
		{"manual callback with conversation", http.MethodPost, "/api/v1/order/manual-callback", func(c *Client) error {
			_, err := c.OrderManualCallback(ctx, "ref-1", "conv-1")
			return err
		}, map[string]any{"reference_id": "ref-1", "conversation_id": "conv-1"}},
		{"related update", http.MethodPost, "/api/v1/order/related-update", func(c *Client) error {
			_, err := c.OrderRelatedUpdate(ctx, "ref-1", "rel-1")
			return err
		}, map[string]any{"reference_id": "ref-1", "related_reference_id": "rel-1"}},
		{"accounting", http.MethodPost, "/api/v1/order/accounting", func(c *Client) error {
			_, err := c.OrderAccounting(ctx, entities.OrderAccountingRequest{OrderReferenceID: "ref-1"})
			return err
		}, map[string]any{"order_reference_id": "ref-1"}},
		{"postauth", http.MethodPost, "/api/v1/order/postauth", func(c *Client) error {
			_, err := c.OrderPostAuth(ctx, entities.OrderPostAuthRequest{Amount: 10, ReferenceID: "ref-1"})
			return err
		}, map[string]any{"amount": float64(10), "reference_id": "ref-1"}},
		{"payment details by reference", http.MethodGet, "/api/v1/order/ref-1/payment-details", func(c *Client) error {
			_, err := c.GetOrderPaymentDetails(ctx, "ref-1", "")
			return err
		}, nil},
		{"payment details by conversation", http.MethodPost, "/api/v1/order/payment-details", func(c *Client) error {
			_, err := c.GetOrderPaymentDetails(ctx, "ref-1", "conv-1")
			return err
		}, map[string]any{"reference_id": "ref-1", "conversation_id": "conv-1"}},
		{"status", http.MethodGet, "/api/v1/order/ref-1/status", func(c *Client) error {
			_, err := c.GetOrderStatus(ctx, "ref-1")
			return err
		}, nil},
		{"transactions", http.MethodGet, "/api/v1/order/ref-1/transactions", func(c *Client) error {
			_, err := c.GetOrderTransactions(ctx, "ref-1")
			return err
		}, nil},
		{"system statuses", http.MethodGet, "/api/v1/system/order-statuses", func(c *Client) error {
			_, err := c.GetSystemOrderStatuses(ctx)
			return err
		}, nil},
		{"submerchants", http.MethodGet, "/api/v1/order/submerchants", func(c *Client) error {
			_, err := c.GetOrderSubmerchants(ctx, 1, 20)
			return err
		}, nil},
		{"organization settings", http.MethodGet, "/api/v1/organization/settings", func(c *Client) error {
			_, err := c.GetOrganizationSettings(ctx)
			return err
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.on(tt.method, tt.path, http.StatusOK, `{"ok":true}`)

			require.NoError(t, tt.call(api.client()))
			req := api.last()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, tt.body, req.Body)
		})
	}
}

func TestOrderTerms_Endpoints(t *testing.T) {
	ctx := context.Background()
	update := entities.NewOrderPaymentTermUpdateRequest("term-1")
	update.Amount = entities.Ptr(0.0)

	tests := []struct {
		name   string
		method string
		path   string
		call   func(*Client) error
		body   map[string]any
	}{
		{"get", http.MethodGet, "/api/v1/order/term/term-1", func(c *Client) error {
			_, err := c.GetOrderTerm(ctx, "term-1")
			return err
		}, nil},
		{"create", http.MethodPost, "/api/v1/order/term", func(c *Client) error {
			_, err := c.CreateOrderTerm(ctx, entities.OrderPaymentTermCreateRequest{
				OrderID: "ord-1", TermReferenceID: "term-1", Amount: 50, DueDate: "2025-01-01", TermSequence: 1, Required: true, Status: "PENDING",
			})
			return err
		}, map[string]any{
			"order_id": "ord-1", "term_reference_id": "term-1", "amount": float64(50), "due_date": "2025-01-01",
			"term_sequence": float64(1), "required": true, "status": "PENDING",
		}},
		{"update keeps explicit zero", http.MethodPost, "/api/v1/order/term/update", func(c *Client) error {
			_, err := c.UpdateOrderTerm(ctx, update)
			return err
		}, map[string]any{"term_reference_id": "term-1", "amount": float64(0)}},
		{"delete", http.MethodPost, "/api/v1/order/term/delete", func(c *Client) error {
			_, err := c.DeleteOrderTerm(ctx, "ord-1", "term-1")
			return err
		}, map[string]any{"order_id": "ord-1", "term_reference_id": "term-1"}},
		{"refund", http.MethodPost, "/api/v1/order/term/refund", func(c *Client) error {
			_, err := c.RefundOrderTerm(ctx, entities.NewOrderTermRefundRequest("term-1", 5))
			return err
		}, map[string]any{"term_id": "term-1", "amount": float64(5)}},
		{"terminate without reason", http.MethodPost, "/api/v1/order/term/terminate", func(c *Client) error {
			_, err := c.TerminateOrderTerm(ctx, "term-1", "")
			return err
		}, map[string]any{"term_reference_id": "term-1"}},
		{"terminate with reason", http.MethodPost, "/api/v1/order/term/terminate", func(c *Client) error {
			_, err := c.TerminateOrderTerm(ctx, "term-1", "customer request")
			return err
		}, map[string]any{"term_reference_id": "term-1", "reason": "customer request"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.on(tt.method, tt.path, http.StatusOK, `{}`)

			require.NoError(t, tt.call(api.client()))
			req := api.last()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, tt.body, req.Body)
		})
	}
}

func TestOrderTerms_PropagateServerErrors(t *testing.T) {
	api := newFakeAPI(t)
	api.on(http.MethodPost, "/api/v1/order/term/refund", http.StatusConflict, `{"code":4090,"error":"TERM_ALREADY_REFUNDED"}`)

	_, err := api.client().RefundOrderTerm(context.Background(), entities.NewOrderTermRefundRequest("term-1", 5))
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, 4090, apiErr.Code)
	assert.Equal(t, "TERM_ALREADY_REFUNDED", apiErr.Message)
}
