// Package decode converts loosely-typed map payloads into typed structs
// via a JSON round trip. It bridges legacy request bodies that carry
// free-form objects into the typed configuration surface.
package decode

import "encoding/json"

// FromMap decodes a map into the target struct type using JSON field tags.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
