package request

import (
	"strings"

	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

const DefaultLocale = "tr"

type CheckoutBuyerRequest struct {
	Name           string `json:"name" binding:"required"`
	Surname        string `json:"surname" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	GSMNumber      string `json:"gsm_number"`
	IdentityNumber string `json:"identity_number"`
	City           string `json:"city"`
	Country        string `json:"country"`
	ZipCode        string `json:"zip_code"`
}

type CheckoutItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"gt=0"`
	Quantity int     `json:"quantity" binding:"omitempty,gte=1"`
}

// CheckoutRequest is the body of POST /v1/checkout.
//
// `installments` uses the "1,2,3" form; it is validated by the use case.
type CheckoutRequest struct {
	Amount              float64               `json:"amount" binding:"gt=0"`
	Currency            string                `json:"currency" binding:"required"`
	Locale              string                `json:"locale"`
	Buyer               CheckoutBuyerRequest  `json:"buyer" binding:"required"`
	Items               []CheckoutItemRequest `json:"items" binding:"dive"`
	Installments        string                `json:"installments"`
	ExternalReferenceID string                `json:"external_reference_id"`
}

func (r CheckoutRequest) ResolveLocale() string {
	if v := strings.TrimSpace(r.Locale); v != "" {
		return v
	}
	return DefaultLocale
}

func (r CheckoutRequest) ToBuyer() entities.Buyer {
	b := entities.NewBuyer(strings.TrimSpace(r.Buyer.Name), strings.TrimSpace(r.Buyer.Surname))
	b.Email = optional(r.Buyer.Email)
	b.GSMNumber = optional(r.Buyer.GSMNumber)
	b.IdentityNumber = optional(r.Buyer.IdentityNumber)
	b.City = optional(r.Buyer.City)
	b.Country = optional(r.Buyer.Country)
	b.ZipCode = optional(r.Buyer.ZipCode)
	return b
}

// ToBasketItems returns nil for an empty list so no basket is sent.
func (r CheckoutRequest) ToBasketItems() []entities.BasketItem {
	if len(r.Items) == 0 {
		return nil
	}
	items := make([]entities.BasketItem, 0, len(r.Items))
	for _, it := range r.Items {
		quantity := it.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, entities.BasketItem{
			ID:        optional(it.ID),
			Name:      optional(it.Name),
			Category1: optional(it.Category),
			Price:     entities.Ptr(it.Price),
			Quantity:  entities.Ptr(quantity),
		})
	}
	return items
}

// RefundRequest is the body of POST /v1/checkout/:reference_id/refund.
// A missing amount refunds the whole order.
type RefundRequest struct {
	Amount *float64 `json:"amount"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
