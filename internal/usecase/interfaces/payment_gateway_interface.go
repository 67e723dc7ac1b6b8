package interfaces

import (
	"context"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

// IPaymentGateway abstracts the Tapsilat API for the use cases.
//
// Errors returned are *pkg.APIError so callers can tell local validation,
// transport and server rejections apart.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, order entities.OrderCreateRequest) (entities.OrderResponse, error)
	GetOrder(ctx context.Context, referenceID string) (entities.OrderResponse, error)
	CancelOrder(ctx context.Context, referenceID string) (entities.Raw, error)
	RefundOrder(ctx context.Context, refund entities.RefundOrderRequest) (entities.Raw, error)
	RefundAllOrder(ctx context.Context, referenceID string) (entities.Raw, error)

	CreateSubscription(ctx context.Context, sub entities.SubscriptionCreateRequest) (entities.SubscriptionCreateResponse, error)
	GetSubscription(ctx context.Context, req entities.SubscriptionGetRequest) (entities.SubscriptionDetail, error)
	CancelSubscription(ctx context.Context, req entities.SubscriptionCancelRequest) (entities.Raw, error)

	HealthCheck(ctx context.Context) (entities.Raw, error)
}
