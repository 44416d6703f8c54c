// Package contract defines the role interface of a behavioral specification,
// also known as a "contract".
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is a function meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioral specification.
//
// A contract describes the expectations a consumer has towards a supplier
// at a purely behavioral level, so any implementation of the subject can be
// verified against the same suite.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark expresses the performance aspects that matter for the consumer.
	Benchmark(*testing.B)
}
