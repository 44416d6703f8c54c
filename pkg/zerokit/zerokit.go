// Package zerokit helps with zero value related use-cases such as
// falling back to defaults.
package zerokit

import "reflect"

// Coalesce will return the first non-zero value from the provided values.
//
// Unlike a plain `!= zero` comparison, Coalesce also accepts types that are
// not comparable, such as functions, where only nil-ness can be observed.
func Coalesce[T any](vs ...T) T {
	var zero T
	for _, v := range vs {
		if !IsZero(v) {
			return v
		}
	}
	return zero
}

// IsZero reports whether v is the zero value of its type.
func IsZero[T any](v T) bool {
	if any(v) == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
