package payments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tapsilat/tapsilat-go/internal/config"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/metrics"
	"github.com/tapsilat/tapsilat-go/internal/usecase/interfaces"
	"github.com/tapsilat/tapsilat-go/pkg"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
	"github.com/tapsilat/tapsilat-go/pkg/tapsilat"
)

var ErrMissingTapsilatAPIKey = errors.New("missing TAPSILAT_API_KEY")

const mockCheckoutBaseURL = "https://mock.tapsilat.local/checkout/"

// TapsilatGateway adapts *tapsilat.Client to the use cases. In mock mode no
// request leaves the process and every call answers with a fabricated success.
type TapsilatGateway struct {
	client   *tapsilat.Client
	mockMode bool
	log      logger.Sugared
	metrics  *metrics.GatewayMetrics
}

var _ interfaces.IPaymentGateway = (*TapsilatGateway)(nil)

func NewTapsilatGateway(cfg config.TapsilatConfig, log logger.Sugared, m *metrics.GatewayMetrics) (*TapsilatGateway, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Mock {
		log.Infof("[payment][gateway] mock mode enabled")
		return &TapsilatGateway{mockMode: true, log: log, metrics: m}, nil
	}
	if cfg.APIKey == "" {
		log.Errorf("[payment][gateway] missing TAPSILAT_API_KEY")
		return nil, ErrMissingTapsilatAPIKey
	}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	client := tapsilat.NewClient(cfg.APIKey,
		tapsilat.WithBaseURL(cfg.BaseURL),
		tapsilat.WithTimeout(cfg.Timeout),
		tapsilat.WithHTTPClient(httpClient),
	)
	log.Infof("[payment][gateway] Tapsilat client initialized base_url=%s timeout=%s", client.BaseURL(), client.Timeout())

	return NewTapsilatGatewayWithClient(client, log, m), nil
}

// NewTapsilatGatewayWithClient wraps an already configured client.
func NewTapsilatGatewayWithClient(client *tapsilat.Client, log logger.Sugared, m *metrics.GatewayMetrics) *TapsilatGateway {
	if log == nil {
		log = logger.Nop()
	}
	return &TapsilatGateway{client: client, log: log, metrics: m}
}

func (g *TapsilatGateway) MockMode() bool {
	return g.mockMode
}

func (g *TapsilatGateway) CreateOrder(ctx context.Context, order entities.OrderCreateRequest) (resp entities.OrderResponse, err error) {
	defer g.observe("create_order", time.Now(), &err)

	if g.mockMode {
		if err := order.Validate(); err != nil {
			return entities.OrderResponse{}, err
		}
		ref := uuid.NewString()
		out := map[string]any{
			"reference_id": ref,
			"order_id":     uuid.NewString(),
			"checkout_url": mockCheckoutBaseURL + ref,
			"status":       "CREATED",
		}
		if order.ConversationID != nil {
			out["conversation_id"] = *order.ConversationID
		}
		g.log.Infof("[payment][gateway] mock create-order success reference_id=%s", ref)
		return entities.NewOrderResponse(out), nil
	}
	return g.client.CreateOrder(ctx, order)
}

func (g *TapsilatGateway) GetOrder(ctx context.Context, referenceID string) (resp entities.OrderResponse, err error) {
	defer g.observe("get_order", time.Now(), &err)

	if g.mockMode {
		return entities.NewOrderResponse(map[string]any{
			"reference_id": referenceID,
			"checkout_url": mockCheckoutBaseURL + referenceID,
			"status":       "CREATED",
		}), nil
	}
	return g.client.GetOrder(ctx, referenceID)
}

func (g *TapsilatGateway) CancelOrder(ctx context.Context, referenceID string) (resp entities.Raw, err error) {
	defer g.observe("cancel_order", time.Now(), &err)

	if g.mockMode {
		return mockAck(referenceID), nil
	}
	return g.client.CancelOrder(ctx, referenceID)
}

func (g *TapsilatGateway) RefundOrder(ctx context.Context, refund entities.RefundOrderRequest) (resp entities.Raw, err error) {
	defer g.observe("refund_order", time.Now(), &err)

	if g.mockMode {
		return mockAck(refund.ReferenceID), nil
	}
	return g.client.RefundOrder(ctx, refund)
}

func (g *TapsilatGateway) RefundAllOrder(ctx context.Context, referenceID string) (resp entities.Raw, err error) {
	defer g.observe("refund_all_order", time.Now(), &err)

	if g.mockMode {
		return mockAck(referenceID), nil
	}
	return g.client.RefundAllOrder(ctx, referenceID)
}

func (g *TapsilatGateway) CreateSubscription(ctx context.Context, sub entities.SubscriptionCreateRequest) (resp entities.SubscriptionCreateResponse, err error) {
	defer g.observe("create_subscription", time.Now(), &err)

	if g.mockMode {
		if err := sub.Validate(); err != nil {
			return entities.SubscriptionCreateResponse{}, err
		}
		return entities.SubscriptionCreateResponse{
			ReferenceID:      uuid.NewString(),
			OrderReferenceID: uuid.NewString(),
			Message:          "mock subscription created",
		}, nil
	}
	return g.client.CreateSubscription(ctx, sub)
}

func (g *TapsilatGateway) GetSubscription(ctx context.Context, req entities.SubscriptionGetRequest) (resp entities.SubscriptionDetail, err error) {
	defer g.observe("get_subscription", time.Now(), &err)

	if g.mockMode {
		detail := entities.SubscriptionDetail{IsActive: true, PaymentStatus: "PAID"}
		if req.ExternalReferenceID != nil {
			detail.ExternalReferenceID = *req.ExternalReferenceID
		}
		return detail, nil
	}
	return g.client.GetSubscription(ctx, req)
}

func (g *TapsilatGateway) CancelSubscription(ctx context.Context, req entities.SubscriptionCancelRequest) (resp entities.Raw, err error) {
	defer g.observe("cancel_subscription", time.Now(), &err)

	if g.mockMode {
		ref := ""
		if req.ReferenceID != nil {
			ref = *req.ReferenceID
		}
		return mockAck(ref), nil
	}
	return g.client.CancelSubscription(ctx, req)
}

func (g *TapsilatGateway) HealthCheck(ctx context.Context) (resp entities.Raw, err error) {
	defer g.observe("health_check", time.Now(), &err)

	if g.mockMode {
		return entities.NewRaw(map[string]any{"status": "ok", "mock": true}), nil
	}
	return g.client.HealthCheck(ctx)
}

func (g *TapsilatGateway) observe(operation string, start time.Time, errp *error) {
	elapsed := time.Since(start)
	err := *errp
	g.metrics.ObserveCall(operation, Outcome(err), elapsed)
	if err != nil {
		g.log.Warnf("[payment][gateway] %s failed elapsed=%s err=%v", operation, elapsed, err)
		return
	}
	g.log.Debugf("[payment][gateway] %s success elapsed=%s", operation, elapsed)
}

// Outcome classifies an error returned by the client into a metrics label.
func Outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	apiErr, ok := pkg.AsAPIError(err)
	switch {
	case !ok:
		return metrics.OutcomeAPI
	case apiErr.IsValidation():
		return metrics.OutcomeValidation
	case apiErr.IsTransport():
		return metrics.OutcomeTransport
	default:
		return metrics.OutcomeAPI
	}
}

func mockAck(referenceID string) entities.Raw {
	return entities.NewRaw(map[string]any{
		"is_success":   true,
		"reference_id": referenceID,
		"date":         time.Now().UTC().Format(time.RFC3339Nano),
	})
}
