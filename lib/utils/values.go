package utils

import (
	"math"
	"reflect"
	"sync/atomic"
)

// ToSequence converts any slice or array held in v into a []any, argument
// names v in the error returned when it is not a sequence
func ToSequence(argument string, v any) ([]any, error) {
	if items, ok := v.([]any); ok {
		return items, nil
	}

	if !isSequence(v) {
		return nil, invalidArgument(argument, ExpectedSequence, v)
	}

	rv := reflect.ValueOf(v)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}

// ToText returns v when it holds a string
func ToText(argument string, v any) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", invalidArgument(argument, ExpectedText, v)
	}
	return text, nil
}

// ToInt converts integer and float kinds to int. Floats must be finite and
// integral, JSON numbers decode as float64.
func ToInt(argument string, v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			break
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			break
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			break
		}
		if f < math.MinInt || f >= math.MaxInt {
			break
		}
		return int(f), nil
	}

	return 0, invalidArgument(argument, ExpectedNumeric, v)
}

// ToIndex converts integer and float kinds to an int position. Floats are
// truncated toward zero and saturate at the int bounds, only NaN and
// non-numeric values are rejected.
func ToIndex(argument string, v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		f := math.Trunc(rv.Float())
		switch {
		case math.IsNaN(f):
		case f >= math.MaxInt:
			return math.MaxInt, nil
		case f <= math.MinInt:
			return math.MinInt, nil
		default:
			return int(f), nil
		}
	}

	return 0, invalidArgument(argument, ExpectedNumeric, v)
}

// ToFloat converts integer and float kinds to float64
func ToFloat(argument string, v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}

	return 0, invalidArgument(argument, ExpectedNumeric, v)
}

// Flatten recursively inlines every nested sequence of items, left to right.
// Cyclic structures are not detected.
func Flatten(items []any) []any {
	flat := make([]any, 0, len(items))
	for _, item := range items {
		if !isSequence(item) {
			flat = append(flat, item)
			continue
		}

		nested, _ := ToSequence("items", item)
		flat = append(flat, Flatten(nested)...)
	}
	return flat
}

// IsFalsy reports whether v is one of: nil, a nil pointer or interface,
// false, a numeric zero of any kind, NaN or the empty string. Every other
// value, empty slices and maps included, is truthy.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	}
	return false
}

// Compact returns the truthy elements of items, see IsFalsy
func Compact(items []any) []any {
	compacted := make([]any, 0, len(items))
	for _, item := range items {
		if !IsFalsy(item) {
			compacted = append(compacted, item)
		}
	}
	return compacted
}

// IsPlainMapping reports whether v is a keyed composite value: a non-nil map,
// a struct, or a non-nil pointer to either
func IsPlainMapping(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	}
	return false
}

// UniqueValues is Unique for untyped values, see ValueKey
func UniqueValues(items []any) []any {
	return UniqueBy(items, ValueKey)
}

// IntersectionValues is Intersection for untyped values, see ValueKey
func IntersectionValues(a, b []any) []any {
	return IntersectionBy(a, b, ValueKey)
}

// DifferenceValues is Difference for untyped values, see ValueKey
func DifferenceValues(a, b []any) []any {
	return DifferenceBy(a, b, ValueKey)
}

type referenceKey struct {
	kind   reflect.Kind
	ptr    uintptr
	len    int
	unique uint64
}

var lastUniqueKey atomic.Uint64

// ValueKey returns a comparable key for v. Values that are comparable at
// runtime are their own key, non-empty slices, maps and funcs are keyed by
// reference so two distinct composites never collide. Composites without a
// usable address (empty slices, non-comparable arrays and structs) get a key
// of their own on every call, so they never match anything, themselves
// included.
func ValueKey(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v
	}

	key := referenceKey{kind: rv.Kind()}
	switch rv.Kind() {
	case reflect.Slice:
		// zero-capacity slices may all share one base address
		if rv.Cap() > 0 {
			key.ptr = rv.Pointer()
			key.len = rv.Len()
		}
	case reflect.Map, reflect.Func:
		key.ptr = rv.Pointer()
	}

	if key.ptr == 0 {
		key.unique = lastUniqueKey.Add(1)
	}
	return key
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}
