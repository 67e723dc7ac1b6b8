package request

import (
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

type SubscriptionUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

type SubscriptionCreateRequest struct {
	Title               string                   `json:"title" binding:"required"`
	Amount              float64                  `json:"amount" binding:"gt=0"`
	Currency            string                   `json:"currency" binding:"required"`
	Period              int                      `json:"period" binding:"omitempty,gte=1"`
	Cycle               int                      `json:"cycle" binding:"omitempty,gte=1"`
	PaymentDate         int                      `json:"payment_date" binding:"omitempty,gte=1,lte=31"`
	ExternalReferenceID string                   `json:"external_reference_id"`
	User                *SubscriptionUserRequest `json:"user"`
}

func (r SubscriptionCreateRequest) ToEntity() entities.SubscriptionCreateRequest {
	sub := entities.NewSubscriptionCreateRequest(r.Title, r.Amount, r.Currency)
	if r.Period > 0 {
		sub.Period = entities.Ptr(r.Period)
	}
	if r.Cycle > 0 {
		sub.Cycle = entities.Ptr(r.Cycle)
	}
	if r.PaymentDate > 0 {
		sub.PaymentDate = entities.Ptr(r.PaymentDate)
	}
	sub.ExternalReferenceID = optional(r.ExternalReferenceID)
	if r.User != nil {
		sub.User = &entities.SubscriptionUser{
			FirstName: optional(r.User.FirstName),
			LastName:  optional(r.User.LastName),
			Email:     optional(r.User.Email),
			Phone:     optional(r.User.Phone),
		}
	}
	return sub
}
