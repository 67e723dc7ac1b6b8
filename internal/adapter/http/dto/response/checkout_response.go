package response

import (
	"github.com/tapsilat/tapsilat-go/internal/usecase"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

type CheckoutResponse struct {
	ReferenceID    string `json:"reference_id"`
	OrderID        string `json:"order_id,omitempty"`
	CheckoutURL    string `json:"checkout_url,omitempty"`
	ConversationID string `json:"conversation_id"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		ReferenceID:    r.ReferenceID,
		OrderID:        r.OrderID,
		CheckoutURL:    r.CheckoutURL,
		ConversationID: r.ConversationID,
	}
}

// OrderResponse exposes the known identifiers and passes the full API
// payload through untouched.
type OrderResponse struct {
	ReferenceID string       `json:"reference_id"`
	OrderID     string       `json:"order_id,omitempty"`
	CheckoutURL string       `json:"checkout_url,omitempty"`
	Order       entities.Raw `json:"order"`
}

func FromOrder(o entities.OrderResponse) OrderResponse {
	return OrderResponse{
		ReferenceID: o.ReferenceID(),
		OrderID:     o.OrderID(),
		CheckoutURL: o.CheckoutURL(),
		Order:       o.Raw,
	}
}

type SubscriptionCreatedResponse struct {
	ReferenceID      string `json:"reference_id"`
	OrderReferenceID string `json:"order_reference_id,omitempty"`
	Message          string `json:"message,omitempty"`
}

func FromSubscriptionCreated(r entities.SubscriptionCreateResponse) SubscriptionCreatedResponse {
	return SubscriptionCreatedResponse{
		ReferenceID:      r.ReferenceID,
		OrderReferenceID: r.OrderReferenceID,
		Message:          r.Message,
	}
}

type WebhookAcceptedResponse struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

func FromWebhookEvent(e usecase.WebhookEvent) WebhookAcceptedResponse {
	return WebhookAcceptedResponse{ReferenceID: e.ReferenceID, Status: e.Status}
}
