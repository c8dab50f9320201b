package exrecord

import (
	"fmt"
	"reflect"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// binder creates records and stores converted values in them.
type binder[R any] interface {
	New() R
	Set(rec R, m models.FieldMapping, v any) error
}

// structBinder fills the fields of a *T through their index path.
type structBinder[T any] struct{}

func (structBinder[T]) New() *T {
	return new(T)
}

func (structBinder[T]) Set(rec *T, m models.FieldMapping, v any) error {
	return assign(reflect.ValueOf(rec).Elem().FieldByIndex(m.Accessor), v)
}

// assign stores v in field, allocating when the field is a pointer.
func assign(field reflect.Value, v any) error {
	rv := reflect.ValueOf(v)
	target := field.Type()
	ptr := target.Kind() == reflect.Pointer
	if ptr {
		target = target.Elem()
	}

	if !rv.IsValid() || !rv.Type().AssignableTo(target) {
		return fmt.Errorf("%w: got %T, want %v", ErrTypeMismatch, v, target)
	}

	if ptr {
		p := reflect.New(target)
		p.Elem().Set(rv)
		field.Set(p)
		return nil
	}
	field.Set(rv)
	return nil
}

// mapBinder fills map records keyed by field name.
type mapBinder struct{}

func (mapBinder) New() map[string]any {
	return make(map[string]any)
}

func (mapBinder) Set(rec map[string]any, m models.FieldMapping, v any) error {
	rec[m.Name] = v
	return nil
}
