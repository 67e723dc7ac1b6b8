package entities

type SubscriptionUser struct {
	ID             *string `json:"id,omitzero"`
	FirstName      *string `json:"first_name,omitzero"`
	LastName       *string `json:"last_name,omitzero"`
	Email          *string `json:"email,omitzero"`
	Phone          *string `json:"phone,omitzero"`
	IdentityNumber *string `json:"identity_number,omitzero"`
	Address        *string `json:"address,omitzero"`
	City           *string `json:"city,omitzero"`
	Country        *string `json:"country,omitzero"`
	ZipCode        *string `json:"zip_code,omitzero"`
}

type SubscriptionBilling struct {
	Address     *string `json:"address,omitzero"`
	City        *string `json:"city,omitzero"`
	Country     *string `json:"country,omitzero"`
	ContactName *string `json:"contact_name,omitzero"`
	VATNumber   *string `json:"vat_number,omitzero"`
	ZipCode     *string `json:"zip_code,omitzero"`
}

// SubscriptionCreateRequest is the recurring-billing analogue of OrderCreateRequest.
// Period is the billing interval and Cycle the number of charges.
type SubscriptionCreateRequest struct {
	Amount              float64              `json:"amount"`
	Currency            string               `json:"currency" validate:"required"`
	Title               string               `json:"title" validate:"required"`
	Period              *int                 `json:"period,omitzero"`
	Cycle               *int                 `json:"cycle,omitzero"`
	PaymentDate         *int                 `json:"payment_date,omitzero"`
	ExternalReferenceID *string              `json:"external_reference_id,omitzero"`
	SuccessURL          *string              `json:"success_url,omitzero"`
	FailureURL          *string              `json:"failure_url,omitzero"`
	CardID              *string              `json:"card_id,omitzero"`
	User                *SubscriptionUser    `json:"user,omitzero"`
	Billing             *SubscriptionBilling `json:"billing,omitzero"`
}

func NewSubscriptionCreateRequest(title string, amount float64, currency string) SubscriptionCreateRequest {
	return SubscriptionCreateRequest{Title: title, Amount: amount, Currency: currency}
}

func (s SubscriptionCreateRequest) Validate() error {
	return validateStruct(s)
}

// SubscriptionGetRequest selects a subscription by either identifier.
type SubscriptionGetRequest struct {
	ReferenceID         *string `json:"reference_id,omitzero"`
	ExternalReferenceID *string `json:"external_reference_id,omitzero"`
}

type SubscriptionCancelRequest struct {
	ReferenceID         *string `json:"reference_id,omitzero"`
	ExternalReferenceID *string `json:"external_reference_id,omitzero"`
}

type SubscriptionRedirectRequest struct {
	SubscriptionID string `json:"subscription_id"`
}

type SubscriptionOrder struct {
	ReferenceID string  `json:"reference_id,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Status      string  `json:"status,omitempty"`
	PaymentDate string  `json:"payment_date,omitempty"`
}

// SubscriptionDetail is decoded from POST /subscription. Unknown fields are ignored.
type SubscriptionDetail struct {
	ExternalReferenceID string              `json:"external_reference_id,omitempty"`
	Title               string              `json:"title,omitempty"`
	IsActive            bool                `json:"is_active"`
	PaymentStatus       string              `json:"payment_status,omitempty"`
	Amount              float64             `json:"amount,omitempty"`
	Currency            string              `json:"currency,omitempty"`
	Period              int                 `json:"period,omitempty"`
	Cycle               int                 `json:"cycle,omitempty"`
	PaymentDate         int                 `json:"payment_date,omitempty"`
	DueDate             string              `json:"due_date,omitempty"`
	Orders              []SubscriptionOrder `json:"orders,omitempty"`
}

type SubscriptionCreateResponse struct {
	ReferenceID      string `json:"reference_id,omitempty"`
	OrderReferenceID string `json:"order_reference_id,omitempty"`
	Code             int    `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
}

type SubscriptionRedirectResponse struct {
	URL string `json:"url,omitempty"`
}
