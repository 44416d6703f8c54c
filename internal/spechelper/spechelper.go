package spechelper

import (
	"testing"

	"go.llib.dev/testcase"
)

// MakeValue creates a random value of the requested type.
// It is the default fixture factory of the contract configurations.
func MakeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}
