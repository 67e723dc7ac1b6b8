package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tapsilat/tapsilat-go/internal/config"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/usecase/interfaces"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

type ISubscriptionUseCase interface {
	Create(ctx context.Context, sub entities.SubscriptionCreateRequest) (entities.SubscriptionCreateResponse, error)
	Get(ctx context.Context, referenceID string) (entities.SubscriptionDetail, error)
	Cancel(ctx context.Context, referenceID string) (entities.Raw, error)
}

type SubscriptionUseCase struct {
	gateway  interfaces.IPaymentGateway
	checkout config.CheckoutConfig
	log      logger.Sugared
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(gateway interfaces.IPaymentGateway, checkout config.CheckoutConfig, log logger.Sugared) *SubscriptionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SubscriptionUseCase{gateway: gateway, checkout: checkout, log: log}
}

// Create fills in an external reference and the configured redirect URLs
// when the caller left them unset. sub is passed by value and not modified.
func (u *SubscriptionUseCase) Create(ctx context.Context, sub entities.SubscriptionCreateRequest) (entities.SubscriptionCreateResponse, error) {
	if u.gateway == nil {
		return entities.SubscriptionCreateResponse{}, ErrGatewayNotConfigured
	}
	if sub.ExternalReferenceID == nil {
		sub.ExternalReferenceID = entities.Ptr(uuid.NewString())
	}
	if sub.SuccessURL == nil && u.checkout.SuccessURL != "" {
		sub.SuccessURL = entities.Ptr(u.checkout.SuccessURL)
	}
	if sub.FailureURL == nil && u.checkout.FailureURL != "" {
		sub.FailureURL = entities.Ptr(u.checkout.FailureURL)
	}

	u.log.Infof("[subscription][usecase] create start external_reference_id=%s title=%q", *sub.ExternalReferenceID, sub.Title)
	resp, err := u.gateway.CreateSubscription(ctx, sub)
	if err != nil {
		u.log.Warnf("[subscription][usecase] create failed external_reference_id=%s err=%v", *sub.ExternalReferenceID, err)
		return entities.SubscriptionCreateResponse{}, err
	}
	u.log.Infof("[subscription][usecase] create success reference_id=%s", resp.ReferenceID)
	return resp, nil
}

func (u *SubscriptionUseCase) Get(ctx context.Context, referenceID string) (entities.SubscriptionDetail, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.SubscriptionDetail{}, ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return entities.SubscriptionDetail{}, ErrGatewayNotConfigured
	}
	return u.gateway.GetSubscription(ctx, entities.SubscriptionGetRequest{ReferenceID: &referenceID})
}

func (u *SubscriptionUseCase) Cancel(ctx context.Context, referenceID string) (entities.Raw, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Raw{}, ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return entities.Raw{}, ErrGatewayNotConfigured
	}
	u.log.Infof("[subscription][usecase] cancel reference_id=%s", referenceID)
	return u.gateway.CancelSubscription(ctx, entities.SubscriptionCancelRequest{ReferenceID: &referenceID})
}
