package table

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Compare orders two cell values ascending. Nil sorts after everything else.
// Numbers compare numerically across integer and float kinds; strings,
// booleans and times compare natively. Anything else, including mismatched
// kinds, compares by its string form.
func Compare(a, b any) int {
	aNil, bNil := isNil(a), isNil(b)
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}

	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	for av.Kind() == reflect.Pointer {
		av = av.Elem()
	}
	for bv.Kind() == reflect.Pointer {
		bv = bv.Elem()
	}

	if x, ok := number(av); ok {
		if y, ok := number(bv); ok {
			return ordered(x, y)
		}
	}
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String())
	}
	if av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool {
		return ordered(boolRank(av.Bool()), boolRank(bv.Bool()))
	}

	return strings.Compare(Stringify(a), Stringify(b))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func ordered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Stringify renders a cell for searching. Nil renders as "null".
func Stringify(v any) string {
	if isNil(v) {
		return "null"
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if t, ok := rv.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(rv.Interface())
}
