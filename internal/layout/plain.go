package layout

import (
	"reflect"

	"github.com/wippyai/slabcopy/errors"
)

// IsPlain reports whether values of t hold no Go pointers, so their bytes can
// be moved into memory the garbage collector does not scan.
func IsPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || IsPlain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !IsPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MustPlain panics with a *errors.Error naming T if T is not plain. Copying
// such a T into raw memory would hide its pointers from the garbage collector.
func MustPlain[T any]() {
	t := reflect.TypeFor[T]()
	if !IsPlain(t) {
		panic(errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			GoType(TypeName(t)).
			Detail("contains pointers and cannot live in raw memory").
			Build())
	}
}
