package entities

// Buyer is the paying customer of an order. GSMNumber is normalized by the
// client before sending (see validators.ValidateGSMNumber).
type Buyer struct {
	Name                string  `json:"name" validate:"required"`
	Surname             string  `json:"surname" validate:"required"`
	BirthDate           *string `json:"birth_date,omitzero"`
	City                *string `json:"city,omitzero"`
	Country             *string `json:"country,omitzero"`
	Email               *string `json:"email,omitzero"`
	GSMNumber           *string `json:"gsm_number,omitzero"`
	ID                  *string `json:"id,omitzero"`
	IdentityNumber      *string `json:"identity_number,omitzero"`
	IP                  *string `json:"ip,omitzero"`
	LastLoginDate       *string `json:"last_login_date,omitzero"`
	RegistrationAddress *string `json:"registration_address,omitzero"`
	RegistrationDate    *string `json:"registration_date,omitzero"`
	Title               *string `json:"title,omitzero"`
	ZipCode             *string `json:"zip_code,omitzero"`
}

func NewBuyer(name, surname string) Buyer {
	return Buyer{Name: name, Surname: surname}
}

// BasketItemPayer identifies who pays for a single basket item.
type BasketItemPayer struct {
	Address     *string `json:"address,omitzero"`
	ReferenceID *string `json:"reference_id,omitzero"`
	TaxOffice   *string `json:"tax_office,omitzero"`
	Title       *string `json:"title,omitzero"`
	Type        *string `json:"type,omitzero"`
	VAT         *string `json:"vat,omitzero"`
}

type BasketItem struct {
	Category1        *string          `json:"category1,omitzero"`
	Category2        *string          `json:"category2,omitzero"`
	CommissionAmount *float64         `json:"commission_amount,omitzero"`
	Coupon           *string          `json:"coupon,omitzero"`
	CouponDiscount   *float64         `json:"coupon_discount,omitzero"`
	Data             *string          `json:"data,omitzero"`
	ID               *string          `json:"id,omitzero"`
	ItemType         *string          `json:"item_type,omitzero"`
	Name             *string          `json:"name,omitzero"`
	PaidAmount       *float64         `json:"paid_amount,omitzero"`
	Payer            *BasketItemPayer `json:"payer,omitzero"`
	Price            *float64         `json:"price,omitzero"`
	Quantity         *int             `json:"quantity,omitzero"`
	QuantityFloat    *float64         `json:"quantity_float,omitzero"`
	QuantityUnit     *string          `json:"quantity_unit,omitzero"`
	SubMerchantKey   *string          `json:"sub_merchant_key,omitzero"`
	SubMerchantPrice *string          `json:"sub_merchant_price,omitzero"`
}

type BillingAddress struct {
	Address      *string `json:"address,omitzero"`
	BillingType  *string `json:"billing_type,omitzero"`
	Citizenship  *string `json:"citizenship,omitzero"`
	City         *string `json:"city,omitzero"`
	ContactName  *string `json:"contact_name,omitzero"`
	ContactPhone *string `json:"contact_phone,omitzero"`
	Country      *string `json:"country,omitzero"`
	District     *string `json:"district,omitzero"`
	TaxOffice    *string `json:"tax_office,omitzero"`
	Title        *string `json:"title,omitzero"`
	VATNumber    *string `json:"vat_number,omitzero"`
	ZipCode      *string `json:"zip_code,omitzero"`
}

type ShippingAddress struct {
	Address      *string `json:"address,omitzero"`
	City         *string `json:"city,omitzero"`
	ContactName  *string `json:"contact_name,omitzero"`
	Country      *string `json:"country,omitzero"`
	ShippingDate *string `json:"shipping_date,omitzero"`
	TrackingCode *string `json:"tracking_code,omitzero"`
	ZipCode      *string `json:"zip_code,omitzero"`
}

// CheckoutDesign customizes the hosted checkout page.
type CheckoutDesign struct {
	InputBackgroundColor *string `json:"input_background_color,omitzero"`
	InputTextColor       *string `json:"input_text_color,omitzero"`
	LabelTextColor       *string `json:"label_text_color,omitzero"`
	LeftBackgroundColor  *string `json:"left_background_color,omitzero"`
	Logo                 *string `json:"logo,omitzero"`
	OrderDetailHTML      *string `json:"order_detail_html,omitzero"`
	PayButtonColor       *string `json:"pay_button_color,omitzero"`
	RedirectURL          *string `json:"redirect_url,omitzero"`
	RightBackgroundColor *string `json:"right_background_color,omitzero"`
	TextColor            *string `json:"text_color,omitzero"`
}

type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type OrderCard struct {
	CardID       string `json:"card_id"`
	CardSequence int    `json:"card_sequence"`
}

// PaymentTerm is one installment/due-date entry of an order.
type PaymentTerm struct {
	Amount          *float64 `json:"amount,omitzero"`
	Data            *string  `json:"data,omitzero"`
	DueDate         *string  `json:"due_date,omitzero"`
	PaidDate        *string  `json:"paid_date,omitzero"`
	Required        *bool    `json:"required,omitzero"`
	Status          *string  `json:"status,omitzero"`
	TermReferenceID *string  `json:"term_reference_id,omitzero"`
	TermSequence    *int     `json:"term_sequence,omitzero"`
}

// OrderPFSubMerchant routes a payment-facilitator order to a sub-merchant.
type OrderPFSubMerchant struct {
	Address        *string `json:"address,omitzero"`
	City           *string `json:"city,omitzero"`
	Country        *string `json:"country,omitzero"`
	CountryISOCode *string `json:"country_iso_code,omitzero"`
	ID             *string `json:"id,omitzero"`
	MCC            *string `json:"mcc,omitzero"`
	Name           *string `json:"name,omitzero"`
	OrgID          *string `json:"org_id,omitzero"`
	PostalCode     *string `json:"postal_code,omitzero"`
	SubmerchantNIN *string `json:"submerchant_nin,omitzero"`
	SubmerchantURL *string `json:"submerchant_url,omitzero"`
	TerminalNo     *string `json:"terminal_no,omitzero"`
}

// SubOrganization is marketplace routing metadata for split settlement.
type SubOrganization struct {
	Acquirer              *string `json:"acquirer,omitzero"`
	Address               *string `json:"address,omitzero"`
	ContactFirstName      *string `json:"contact_first_name,omitzero"`
	ContactLastName       *string `json:"contact_last_name,omitzero"`
	Currency              *string `json:"currency,omitzero"`
	Email                 *string `json:"email,omitzero"`
	GSMNumber             *string `json:"gsm_number,omitzero"`
	IBAN                  *string `json:"iban,omitzero"`
	IdentityNumber        *string `json:"identity_number,omitzero"`
	LegalCompanyTitle     *string `json:"legal_company_title,omitzero"`
	OrganizationName      *string `json:"organization_name,omitzero"`
	SubMerchantExternalID *string `json:"sub_merchant_external_id,omitzero"`
	SubMerchantKey        *string `json:"sub_merchant_key,omitzero"`
	SubMerchantType       *string `json:"sub_merchant_type,omitzero"`
	TaxNumber             *string `json:"tax_number,omitzero"`
	TaxOffice             *string `json:"tax_office,omitzero"`
}

type Submerchant struct {
	Amount              *float64 `json:"amount,omitzero"`
	MerchantReferenceID *string  `json:"merchant_reference_id,omitzero"`
	OrderBasketItemID   *string  `json:"order_basket_item_id,omitzero"`
}

// OrderCreateRequest is the payload of POST /order/create.
//
// EnabledInstallments is normalized by the client before sending. A nil list
// is not sent; an explicit empty list is sent as [].
type OrderCreateRequest struct {
	Amount              float64             `json:"amount"`
	Currency            string              `json:"currency" validate:"required"`
	Locale              string              `json:"locale" validate:"required"`
	Buyer               Buyer               `json:"buyer"`
	BasketItems         []BasketItem        `json:"basket_items,omitzero"`
	BillingAddress      *BillingAddress     `json:"billing_address,omitzero"`
	CheckoutDesign      *CheckoutDesign     `json:"checkout_design,omitzero"`
	ConversationID      *string             `json:"conversation_id,omitzero"`
	EnabledInstallments []int               `json:"enabled_installments,omitzero"`
	ExternalReferenceID *string             `json:"external_reference_id,omitzero"`
	Metadata            []Metadata          `json:"metadata,omitzero"`
	OrderCards          *OrderCard          `json:"order_cards,omitzero"`
	PaidAmount          *float64            `json:"paid_amount,omitzero"`
	PartialPayment      *bool               `json:"partial_payment,omitzero"`
	PaymentFailureURL   *string             `json:"payment_failure_url,omitzero"`
	PaymentMethods      *bool               `json:"payment_methods,omitzero"`
	PaymentMode         *string             `json:"payment_mode,omitzero"`
	PaymentOptions      []string            `json:"payment_options,omitzero"`
	PaymentSuccessURL   *string             `json:"payment_success_url,omitzero"`
	PaymentTerms        []PaymentTerm       `json:"payment_terms,omitzero"`
	PFSubMerchant       *OrderPFSubMerchant `json:"pf_sub_merchant,omitzero"`
	RedirectFailureURL  *string             `json:"redirect_failure_url,omitzero"`
	RedirectSuccessURL  *string             `json:"redirect_success_url,omitzero"`
	ShippingAddress     *ShippingAddress    `json:"shipping_address,omitzero"`
	SubOrganization     *SubOrganization    `json:"sub_organization,omitzero"`
	Submerchants        []Submerchant       `json:"submerchants,omitzero"`
	TaxAmount           *float64            `json:"tax_amount,omitzero"`
	ThreeDForce         *bool               `json:"three_d_force,omitzero"`
}

func NewOrderCreateRequest(amount float64, currency, locale string, buyer Buyer) OrderCreateRequest {
	return OrderCreateRequest{Amount: amount, Currency: currency, Locale: locale, Buyer: buyer}
}

// Validate reports a missing currency, locale or buyer name/surname.
func (o OrderCreateRequest) Validate() error {
	return validateStruct(o)
}
