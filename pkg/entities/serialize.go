// Package entities holds the request and response types exchanged with the
// Tapsilat API.
//
// Optional fields are pointers (or nil slices) tagged `omitzero`: a field the
// caller never set is left out of the payload entirely, while an explicit zero,
// false, empty string or empty slice is still sent. Required fields are plain
// values and are taken by the New* constructors.
package entities

import "encoding/json"

// Ptr returns a pointer to v. It is the usual way to set an optional field:
//
//	buyer.Email = entities.Ptr("john@example.com")
func Ptr[T any](v T) *T {
	return &v
}

// Serialize returns the wire mapping of an entity: the JSON object the client
// would send, decoded back into a map. Unset optional fields are absent from
// the result at every nesting level. It never fails; values that do not encode
// to a JSON object yield an empty map.
//
// Field order follows the struct declaration only in the encoded JSON; the
// returned map is unordered. Numbers come back as float64, integers included.
func Serialize(v any) map[string]any {
	out := map[string]any{}
	b, err := json.Marshal(v)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}
