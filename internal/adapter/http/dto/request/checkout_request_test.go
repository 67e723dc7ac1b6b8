package request

import (
	"testing"
)

func TestCheckoutRequest_ToBuyer(t *testing.T) {
	r := CheckoutRequest{Buyer: CheckoutBuyerRequest{
		Name:      " Ada ",
		Surname:   "Lovelace",
		Email:     "ada@example.com",
		GSMNumber: "+90 555 123 45 67",
		City:      "  ",
	}}

	b := r.ToBuyer()
	if b.Name != "Ada" || b.Surname != "Lovelace" {
		t.Fatalf("unexpected names: %+v", b)
	}
	if b.Email == nil || *b.Email != "ada@example.com" {
		t.Fatalf("unexpected email: %v", b.Email)
	}
	if b.GSMNumber == nil || *b.GSMNumber != "+90 555 123 45 67" {
		t.Fatalf("gsm number must be passed through raw: %v", b.GSMNumber)
	}
	if b.City != nil || b.Country != nil || b.IdentityNumber != nil {
		t.Fatalf("blank fields must stay unset: %+v", b)
	}
}

func TestCheckoutRequest_ToBasketItems(t *testing.T) {
	if items := (CheckoutRequest{}).ToBasketItems(); items != nil {
		t.Fatalf("expected nil items, got %v", items)
	}

	r := CheckoutRequest{Items: []CheckoutItemRequest{
		{ID: "sku-1", Name: "Gear", Price: 10},
		{ID: "sku-2", Name: "Chain", Category: "parts", Price: 5, Quantity: 3},
	}}
	items := r.ToBasketItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if *items[0].Quantity != 1 || items[0].Category1 != nil {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if *items[1].Quantity != 3 || *items[1].Category1 != "parts" || *items[1].Price != 5 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestCheckoutRequest_ResolveLocale(t *testing.T) {
	if got := (CheckoutRequest{}).ResolveLocale(); got != DefaultLocale {
		t.Fatalf("expected default locale, got %q", got)
	}
	if got := (CheckoutRequest{Locale: "en"}).ResolveLocale(); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
}

func TestSubscriptionCreateRequest_ToEntity(t *testing.T) {
	r := SubscriptionCreateRequest{
		Title:    "Gold",
		Amount:   49.9,
		Currency: "TRY",
		Period:   30,
		User:     &SubscriptionUserRequest{Email: "jane@example.com"},
	}

	sub := r.ToEntity()
	if sub.Title != "Gold" || sub.Amount != 49.9 || sub.Currency != "TRY" {
		t.Fatalf("unexpected required fields: %+v", sub)
	}
	if sub.Period == nil || *sub.Period != 30 {
		t.Fatalf("unexpected period: %v", sub.Period)
	}
	if sub.Cycle != nil || sub.PaymentDate != nil || sub.ExternalReferenceID != nil {
		t.Fatalf("zero fields must stay unset: %+v", sub)
	}
	if sub.User == nil || *sub.User.Email != "jane@example.com" || sub.User.Phone != nil {
		t.Fatalf("unexpected user: %+v", sub.User)
	}
}
