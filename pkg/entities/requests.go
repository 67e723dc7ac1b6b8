package entities

// RefundOrderRequest is a partial refund (POST /order/refund).
type RefundOrderRequest struct {
	Amount             float64 `json:"amount"`
	ReferenceID        string  `json:"reference_id"`
	OrderItemID        *string `json:"order_item_id,omitzero"`
	OrderItemPaymentID *string `json:"order_item_payment_id,omitzero"`
}

func NewRefundOrderRequest(amount float64, referenceID string) RefundOrderRequest {
	return RefundOrderRequest{Amount: amount, ReferenceID: referenceID}
}

type OrderPaymentTermCreateRequest struct {
	OrderID         string  `json:"order_id"`
	TermReferenceID string  `json:"term_reference_id"`
	Amount          float64 `json:"amount"`
	DueDate         string  `json:"due_date"`
	TermSequence    int     `json:"term_sequence"`
	Required        bool    `json:"required"`
	Status          string  `json:"status"`
	Data            *string `json:"data,omitzero"`
	PaidDate        *string `json:"paid_date,omitzero"`
}

// OrderPaymentTermUpdateRequest changes only the fields that are set.
type OrderPaymentTermUpdateRequest struct {
	TermReferenceID string   `json:"term_reference_id"`
	Amount          *float64 `json:"amount,omitzero"`
	DueDate         *string  `json:"due_date,omitzero"`
	PaidDate        *string  `json:"paid_date,omitzero"`
	Required        *bool    `json:"required,omitzero"`
	Status          *string  `json:"status,omitzero"`
	TermSequence    *int     `json:"term_sequence,omitzero"`
}

func NewOrderPaymentTermUpdateRequest(termReferenceID string) OrderPaymentTermUpdateRequest {
	return OrderPaymentTermUpdateRequest{TermReferenceID: termReferenceID}
}

type OrderTermRefundRequest struct {
	TermID        string  `json:"term_id"`
	Amount        float64 `json:"amount"`
	ReferenceID   *string `json:"reference_id,omitzero"`
	TermPaymentID *string `json:"term_payment_id,omitzero"`
}

func NewOrderTermRefundRequest(termID string, amount float64) OrderTermRefundRequest {
	return OrderTermRefundRequest{TermID: termID, Amount: amount}
}

type OrderAccountingRequest struct {
	OrderReferenceID string `json:"order_reference_id"`
}

type OrderPostAuthRequest struct {
	Amount      float64 `json:"amount"`
	ReferenceID string  `json:"reference_id"`
}

// OrderListQuery filters GET /order/list. Empty filters are not sent.
type OrderListQuery struct {
	Page               int
	PerPage            int
	StartDate          string
	EndDate            string
	OrganizationID     string
	RelatedReferenceID string
}

// DefaultOrderListQuery returns the first page with ten orders per page.
func DefaultOrderListQuery() OrderListQuery {
	return OrderListQuery{Page: 1, PerPage: 10}
}
