package payload

import (
	"fmt"
	"maps"
	"slices"

	"github.com/prilive-com/tgbind/convert"
	"github.com/prilive-com/tgbind/keycase"
)

// Data is a request payload keyed by enumerated keys.
// Keys holding nil are omitted from the encoded request.
type Data map[Key]any

// New creates a payload and applies opts to it.
func New(opts ...Option) Data {
	d := make(Data)
	d.Apply(opts...)
	return d
}

// Set stores v under k and returns d for chaining.
// Setting a nil value removes the key.
func (d Data) Set(k Key, v any) Data {
	if isNil(v) {
		delete(d, k)
		return d
	}
	d[k] = v
	return d
}

// SetDefault stores v under k only when k is not already set.
func (d Data) SetDefault(k Key, v any) Data {
	if _, ok := d[k]; !ok {
		d.Set(k, v)
	}
	return d
}

// Get returns the value stored under k.
func (d Data) Get(k Key) (any, bool) {
	v, ok := d[k]
	return v, ok
}

// Has reports whether k is set.
func (d Data) Has(k Key) bool {
	_, ok := d[k]
	return ok
}

// Delete removes k.
func (d Data) Delete(k Key) Data {
	delete(d, k)
	return d
}

// Apply runs opts against d in order.
func (d Data) Apply(opts ...Option) Data {
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Clone returns a shallow copy of d.
func (d Data) Clone() Data {
	if d == nil {
		return make(Data)
	}
	return maps.Clone(d)
}

// Keys returns the set keys in sorted order.
func (d Data) Keys() []Key {
	return slices.Sorted(maps.Keys(d))
}

// Merge copies the top-level fields of v into d. v is a struct with JSON tags
// or a map with snake_case keys; zero fields dropped by omitempty are skipped.
// It is used for methods that take an object's fields as flat parameters,
// such as promoteChatMember.
func (d Data) Merge(v any) error {
	m, err := convert.ToMap(v)
	if err != nil {
		return fmt.Errorf("payload: merge: %w", err)
	}
	for k, fv := range m {
		d.Set(Key(keycase.ToCamel(k)), fv)
	}
	return nil
}
