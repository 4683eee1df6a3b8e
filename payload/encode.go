package payload

import (
	"fmt"
	"reflect"

	"github.com/prilive-com/tgbind/convert"
	"github.com/prilive-com/tgbind/keycase"
)

// Encoded is a payload in wire form.
type Encoded struct {
	// Params maps snake_case keys to JSON value trees.
	Params map[string]any
	// Files holds uploads that require a multipart body.
	Files []File
}

// Multipart reports whether the request must be sent as multipart/form-data.
func (e *Encoded) Multipart() bool {
	return len(e.Files) > 0
}

// Encode converts the payload into wire parameters and uploads.
// Keys are processed in sorted order so attach:// names are deterministic.
func (d Data) Encode() (*Encoded, error) {
	var files Files
	params := make(map[string]any, len(d))

	for _, k := range d.Keys() {
		v := d[k]
		if isNil(v) {
			continue
		}
		wire := k.Wire()

		v = attach(v, &files, wire)
		if isNil(v) {
			continue
		}

		nv, err := convert.Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("payload: key %s: %w", k, err)
		}
		params[wire] = keycase.SnakeKeys(nv)
	}

	return &Encoded{Params: params, Files: files.Parts()}, nil
}

// attach resolves uploads in v. Slices are walked element by element so
// media groups and sticker lists can reference their files.
func attach(v any, files *Files, field string) any {
	if a, ok := v.(Attacher); ok {
		return a.Attach(files, field)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return v
	}

	var found bool
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if a, ok := elem.(Attacher); ok && !isNil(elem) {
			out[i] = a.Attach(files, "")
			found = true
			continue
		}
		out[i] = elem
	}
	if !found {
		return v
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
