// Package must is syntax sugar to turn error returns into panics.
//
// It is meant for cases where the error can only be a programming error,
// such as a mapping callback that is known not to fail:
//
//	must.Must(funcmap.CollectErr(m, fn))
package must

// Must returns the value when err is nil, and panics otherwise.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 is the two value variant of Must.
func Must2[A, B any](a A, b B, err error) (A, B) {
	if err != nil {
		panic(err)
	}
	return a, b
}
