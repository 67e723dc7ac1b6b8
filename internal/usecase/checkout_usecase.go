package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/tapsilat/tapsilat-go/internal/config"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/usecase/interfaces"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
	"github.com/tapsilat/tapsilat-go/pkg/validators"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidReferenceID   = errors.New("invalid reference_id")
	ErrInvalidRefundAmount  = errors.New("invalid refund amount")
)

// CheckoutCommand is what a shop submits to start a hosted checkout.
// Installments uses the "1,2,3" form; empty means single payment.
type CheckoutCommand struct {
	Amount              float64
	Currency            string
	Locale              string
	Buyer               entities.Buyer
	Items               []entities.BasketItem
	Installments        string
	ExternalReferenceID string
}

type CheckoutResult struct {
	ReferenceID    string
	OrderID        string
	CheckoutURL    string
	ConversationID string
}

type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error)
	GetOrder(ctx context.Context, referenceID string) (entities.OrderResponse, error)
	CancelOrder(ctx context.Context, referenceID string) (entities.Raw, error)
	// RefundOrder refunds amount, or the whole order when amount is nil.
	RefundOrder(ctx context.Context, referenceID string, amount *float64) (entities.Raw, error)
}

type CheckoutUseCase struct {
	gateway  interfaces.IPaymentGateway
	checkout config.CheckoutConfig
	log      logger.Sugared
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, checkout config.CheckoutConfig, log logger.Sugared) *CheckoutUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutUseCase{gateway: gateway, checkout: checkout, log: log}
}

func (u *CheckoutUseCase) StartCheckout(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if u.gateway == nil {
		u.log.Errorf("[order][usecase] gateway not configured")
		return CheckoutResult{}, ErrGatewayNotConfigured
	}

	conversationID := uuid.NewString()
	u.log.Infof("[order][usecase] create start conversation_id=%s amount=%.2f currency=%s", conversationID, cmd.Amount, cmd.Currency)

	order := entities.NewOrderCreateRequest(cmd.Amount, cmd.Currency, cmd.Locale, cmd.Buyer)
	order.ConversationID = &conversationID
	order.BasketItems = cmd.Items
	if ref := strings.TrimSpace(cmd.ExternalReferenceID); ref != "" {
		order.ExternalReferenceID = &ref
	}
	if strings.TrimSpace(cmd.Installments) != "" {
		installments, err := validators.ValidateInstallments(cmd.Installments)
		if err != nil {
			u.log.Warnf("[order][usecase] invalid installments conversation_id=%s err=%v", conversationID, err)
			return CheckoutResult{}, err
		}
		order.EnabledInstallments = installments
	}
	if u.checkout.SuccessURL != "" {
		order.RedirectSuccessURL = &u.checkout.SuccessURL
	}
	if u.checkout.FailureURL != "" {
		order.RedirectFailureURL = &u.checkout.FailureURL
	}

	resp, err := u.gateway.CreateOrder(ctx, order)
	if err != nil {
		u.log.Warnf("[order][usecase] create failed conversation_id=%s err=%v", conversationID, err)
		return CheckoutResult{}, err
	}

	result := CheckoutResult{
		ReferenceID:    resp.ReferenceID(),
		OrderID:        resp.OrderID(),
		CheckoutURL:    resp.CheckoutURL(),
		ConversationID: conversationID,
	}
	u.log.Infof("[order][usecase] create success conversation_id=%s reference_id=%s has_checkout_url=%t",
		conversationID, result.ReferenceID, result.CheckoutURL != "")
	return result, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, referenceID string) (entities.OrderResponse, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.OrderResponse{}, ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return entities.OrderResponse{}, ErrGatewayNotConfigured
	}
	return u.gateway.GetOrder(ctx, referenceID)
}

func (u *CheckoutUseCase) CancelOrder(ctx context.Context, referenceID string) (entities.Raw, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Raw{}, ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return entities.Raw{}, ErrGatewayNotConfigured
	}
	u.log.Infof("[order][usecase] cancel reference_id=%s", referenceID)
	return u.gateway.CancelOrder(ctx, referenceID)
}

func (u *CheckoutUseCase) RefundOrder(ctx context.Context, referenceID string, amount *float64) (entities.Raw, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Raw{}, ErrInvalidReferenceID
	}
	if amount != nil && *amount <= 0 {
		return entities.Raw{}, ErrInvalidRefundAmount
	}
	if u.gateway == nil {
		return entities.Raw{}, ErrGatewayNotConfigured
	}

	if amount == nil {
		u.log.Infof("[order][usecase] refund-all reference_id=%s", referenceID)
		return u.gateway.RefundAllOrder(ctx, referenceID)
	}
	u.log.Infof("[order][usecase] refund reference_id=%s amount=%.2f", referenceID, *amount)
	return u.gateway.RefundOrder(ctx, entities.NewRefundOrderRequest(*amount, referenceID))
}
