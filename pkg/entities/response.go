package entities

import (
	"encoding/json"
	"maps"
	"strconv"

	"github.com/jmespath/go-jmespath"
)

// Raw is a decoded JSON response kept as-is: an object, an array or a scalar.
// Lookups never fail on missing keys; they report absence instead.
type Raw struct {
	value any
}

func NewRaw(v any) Raw {
	return Raw{value: v}
}

func (r Raw) Value() any {
	return r.value
}

// Map returns the decoded object, or nil when the response is not an object.
func (r Raw) Map() map[string]any {
	m, _ := r.value.(map[string]any)
	return m
}

// Slice returns the decoded array, or nil when the response is not an array.
func (r Raw) Slice() []any {
	s, _ := r.value.([]any)
	return s
}

func (r Raw) Get(key string) (any, bool) {
	v, ok := r.Map()[key]
	return v, ok
}

// GetString returns the value under key as a string. Numbers are formatted;
// absent keys, nulls and other types report false.
func (r Raw) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// Search evaluates a JMESPath expression, e.g. "items[0].reference_id".
// A path that matches nothing yields nil without error.
func (r Raw) Search(expression string) (any, error) {
	return jmespath.Search(expression, r.value)
}

// Decode converts the raw value into dst through its JSON form.
func (r Raw) Decode(dst any) error {
	b, err := json.Marshal(r.value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r *Raw) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.value)
}

// OrderResponse wraps an order payload. The server may add fields at any time,
// so everything is kept in the underlying Raw and only the identifiers the
// client relies on get accessors. Accessors return "" when the key is absent.
type OrderResponse struct {
	Raw
}

func NewOrderResponse(v any) OrderResponse {
	return OrderResponse{Raw: NewRaw(v)}
}

func (o OrderResponse) ReferenceID() string {
	s, _ := o.GetString("reference_id")
	return s
}

func (o OrderResponse) CheckoutURL() string {
	s, _ := o.GetString("checkout_url")
	return s
}

func (o OrderResponse) OrderID() string {
	s, _ := o.GetString("order_id")
	return s
}

// WithCheckoutURL returns a copy carrying checkout_url. The receiver is not modified.
func (o OrderResponse) WithCheckoutURL(url string) OrderResponse {
	m := maps.Clone(o.Map())
	if m == nil {
		m = map[string]any{}
	}
	m["checkout_url"] = url
	return NewOrderResponse(m)
}
