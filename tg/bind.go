package tg

import (
	"context"
	"reflect"

	"github.com/prilive-com/tgbind/payload"
)

// Caller performs a Bot API call. It decodes the envelope result into out.
// sender.Client is the production implementation.
type Caller interface {
	Call(ctx context.Context, method string, data payload.Data, out any) error
}

// Bindable is implemented by models that hold a client reference or contain
// models that do.
type Bindable interface {
	Bind(c Caller)
}

// Bind attaches c to v and every model reachable from it.
// v may be a Bindable, a slice or array of models, or a pointer to one.
func Bind(v any, c Caller) {
	if v == nil {
		return
	}
	if b, ok := v.(Bindable); ok {
		if !isNilPointer(v) {
			b.Bind(c)
		}
		return
	}
	bindValue(reflect.ValueOf(v), c)
}

func bindValue(rv reflect.Value, c Caller) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		elem := rv.Elem()
		if elem.CanAddr() {
			if b, ok := elem.Addr().Interface().(Bindable); ok {
				b.Bind(c)
				return
			}
		}
		bindValue(elem, c)
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			el := rv.Index(i)
			if el.CanAddr() {
				if b, ok := el.Addr().Interface().(Bindable); ok {
					b.Bind(c)
					continue
				}
			}
			if el.CanInterface() {
				if b, ok := el.Interface().(Bindable); ok {
					if !isNilPointer(b) {
						b.Bind(c)
					}
					continue
				}
			}
			bindValue(el, c)
		}
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// bindAll binds a slice of value models in place.
func bindAll[T any, P interface {
	*T
	Bindable
}](items []T, c Caller) {
	for i := range items {
		P(&items[i]).Bind(c)
	}
}

// invoke runs method through c and returns the decoded result.
func invoke[T any](ctx context.Context, c Caller, method string, d payload.Data) (T, error) {
	var out T
	if c == nil {
		return out, ErrUnbound
	}
	err := c.Call(ctx, method, d, &out)
	return out, err
}

// exec runs a method whose result is a plain true.
func exec(ctx context.Context, c Caller, method string, d payload.Data) error {
	_, err := invoke[bool](ctx, c, method, d)
	return err
}
