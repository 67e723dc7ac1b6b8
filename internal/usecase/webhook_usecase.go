package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/metrics"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
	"github.com/tapsilat/tapsilat-go/pkg/tapsilat"
)

var (
	ErrWebhookSecretNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidWebhookSignature    = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload      = errors.New("invalid webhook payload")
)

// WebhookEvent is a verified callback. Payload keeps every field the API sent.
type WebhookEvent struct {
	ReferenceID    string
	ConversationID string
	Status         string
	Payload        entities.Raw
}

type IWebhookUseCase interface {
	Handle(ctx context.Context, payload []byte, signature string) (WebhookEvent, error)
}

type WebhookUseCase struct {
	secret  string
	metrics *metrics.GatewayMetrics
	log     logger.Sugared
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(secret string, m *metrics.GatewayMetrics, log logger.Sugared) *WebhookUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WebhookUseCase{secret: secret, metrics: m, log: log}
}

func (u *WebhookUseCase) Handle(_ context.Context, payload []byte, signature string) (WebhookEvent, error) {
	if u.secret == "" {
		u.log.Errorf("[webhook][usecase] secret not configured")
		return WebhookEvent{}, ErrWebhookSecretNotConfigured
	}

	valid := tapsilat.VerifyWebhook(payload, signature, u.secret)
	u.metrics.RecordWebhook(valid)
	if !valid {
		u.log.Warnf("[webhook][usecase] signature mismatch payload_len=%d", len(payload))
		return WebhookEvent{}, ErrInvalidWebhookSignature
	}

	var raw entities.Raw
	if err := json.Unmarshal(payload, &raw); err != nil || raw.Map() == nil {
		u.log.Warnf("[webhook][usecase] payload is not a json object payload_len=%d", len(payload))
		return WebhookEvent{}, ErrInvalidWebhookPayload
	}

	event := WebhookEvent{Payload: raw}
	event.ReferenceID, _ = raw.GetString("reference_id")
	event.ConversationID, _ = raw.GetString("conversation_id")
	event.Status, _ = raw.GetString("status")
	u.log.Infof("[webhook][usecase] accepted reference_id=%s status=%s", event.ReferenceID, event.Status)
	return event, nil
}
