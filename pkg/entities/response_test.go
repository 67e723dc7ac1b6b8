package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderResponse_Accessors(t *testing.T) {
	resp := NewOrderResponse(map[string]any{
		"reference_id": "ref123",
		"order_id":     "order123",
		"unknown":      map[string]any{"nested": true},
	})

	assert.Equal(t, "ref123", resp.ReferenceID())
	assert.Equal(t, "order123", resp.OrderID())
	assert.Equal(t, "", resp.CheckoutURL())

	v, ok := resp.Get("unknown")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"nested": true}, v)

	_, ok = resp.Get("missing")
	assert.False(t, ok)
}

func TestOrderResponse_MissingKeysNeverFail(t *testing.T) {
	for _, v := range []any{nil, map[string]any{}, []any{"x"}, "text"} {
		resp := NewOrderResponse(v)
		assert.Equal(t, "", resp.ReferenceID())
		assert.Equal(t, "", resp.OrderID())
		assert.Equal(t, "", resp.CheckoutURL())
	}
}

func TestOrderResponse_NumericIdentifier(t *testing.T) {
	resp := NewOrderResponse(map[string]any{"order_id": float64(42)})
	assert.Equal(t, "42", resp.OrderID())
}

func TestOrderResponse_WithCheckoutURL(t *testing.T) {
	original := NewOrderResponse(map[string]any{"reference_id": "ref123"})

	enriched := original.WithCheckoutURL("https://checkout.example/ref123")

	assert.Equal(t, "https://checkout.example/ref123", enriched.CheckoutURL())
	assert.Equal(t, "ref123", enriched.ReferenceID())
	assert.Equal(t, "", original.CheckoutURL())

	fromNil := NewOrderResponse(nil).WithCheckoutURL("u")
	assert.Equal(t, "u", fromNil.CheckoutURL())
}

func TestRaw_SearchAndDecode(t *testing.T) {
	var raw Raw
	require.NoError(t, json.Unmarshal([]byte(`{"page":1,"items":[{"reference_id":"a"},{"reference_id":"b"}]}`), &raw))

	got, err := raw.Search("items[1].reference_id")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	got, err = raw.Search("missing.path")
	require.NoError(t, err)
	assert.Nil(t, got)

	var page struct {
		Page  int `json:"page"`
		Items []struct {
			ReferenceID string `json:"reference_id"`
		} `json:"items"`
	}
	require.NoError(t, raw.Decode(&page))
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 2)

	assert.Nil(t, raw.Slice())
	b, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":1,"items":[{"reference_id":"a"},{"reference_id":"b"}]}`, string(b))
}

func TestRaw_Array(t *testing.T) {
	raw := NewRaw([]any{"a", "b"})
	assert.Nil(t, raw.Map())
	assert.Equal(t, []any{"a", "b"}, raw.Slice())
	_, ok := raw.GetString("a")
	assert.False(t, ok)
}

func TestSubscriptionDetail_ToleratesUnknownFields(t *testing.T) {
	raw := NewRaw(map[string]any{
		"external_reference_id": "ext-ref-123",
		"is_active":             true,
		"title":                 "My Subscription",
		"payment_status":        "PAID",
		"brand_new_field":       "ignored",
	})

	var detail SubscriptionDetail
	require.NoError(t, raw.Decode(&detail))
	assert.Equal(t, "ext-ref-123", detail.ExternalReferenceID)
	assert.True(t, detail.IsActive)
	assert.Equal(t, "PAID", detail.PaymentStatus)
}
