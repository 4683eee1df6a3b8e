// Package convert turns objects into other typed shapes by routing them
// through their JSON representation.
//
// It is the bridge between typed request/response structs, the generic
// value trees that payloads are assembled from, and client-side camelCase
// maps.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prilive-com/tgbind/keycase"
)

// To converts v into T by marshaling it to JSON and unmarshaling the
// result. Numbers decoded into interface values are kept as json.Number.
func To[T any](v any) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("convert: marshal %T: %w", v, err)
	}
	if err := decode(data, &out); err != nil {
		return out, fmt.Errorf("convert: %T into %T: %w", v, out, err)
	}
	return out, nil
}

// ToMap converts an object into a generic map using its JSON field names.
func ToMap(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return To[map[string]any](v)
}

// Normalize converts v into a generic JSON value tree made of
// map[string]any, []any, string, bool, json.Number and nil.
// Basic scalars are returned without a JSON round trip.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case json.RawMessage:
		var out any
		if err := decode(t, &out); err != nil {
			return nil, fmt.Errorf("convert: raw message: %w", err)
		}
		return out, nil
	}
	return To[any](v)
}

// FromCamel converts a map keyed by camelCase client field names into T,
// whose JSON shape uses snake_case wire keys.
func FromCamel[T any](m map[string]any) (T, error) {
	return To[T](keycase.SnakeKeys(m))
}

// ToCamel converts v into a map keyed by camelCase client field names.
func ToCamel(v any) (map[string]any, error) {
	m, err := ToMap(v)
	if err != nil {
		return nil, err
	}
	out, _ := keycase.CamelKeys(m).(map[string]any)
	return out, nil
}

func decode(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(out)
}
