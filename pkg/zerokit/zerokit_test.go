package zerokit_test

import (
	"testing"

	"go.llib.dev/funcmap/pkg/zerokit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func TestCoalesce(t *testing.T) {
	t.Run("first non-zero value is returned", func(t *testing.T) {
		exp := random.Unique(rnd.Int, 0)
		assert.Equal(t, exp, zerokit.Coalesce(0, exp, rnd.Int()))
	})
	t.Run("all zero yields the zero value", func(t *testing.T) {
		assert.Equal(t, "", zerokit.Coalesce("", "", ""))
	})
	t.Run("no values yields the zero value", func(t *testing.T) {
		assert.Equal(t, 0, zerokit.Coalesce[int]())
	})
	t.Run("works with function values", func(t *testing.T) {
		var called bool
		fn := zerokit.Coalesce[func()](nil, func() { called = true })
		assert.NotNil(t, fn)
		fn()
		assert.True(t, called)
	})
	t.Run("works with pointers", func(t *testing.T) {
		exp := &struct{}{}
		assert.Equal(t, exp, zerokit.Coalesce(nil, exp))
	})
}

func TestIsZero(t *testing.T) {
	assert.True(t, zerokit.IsZero(0))
	assert.True(t, zerokit.IsZero(""))
	assert.True(t, zerokit.IsZero[func()](nil))
	assert.True(t, zerokit.IsZero[*int](nil))
	assert.False(t, zerokit.IsZero(random.Unique(rnd.Int, 0)))
	assert.False(t, zerokit.IsZero(rnd.String()+"!"))
	assert.False(t, zerokit.IsZero(func() {}))
}
