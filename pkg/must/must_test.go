package must_test

import (
	"strconv"
	"testing"

	"go.llib.dev/funcmap/pkg/must"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func TestMust(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Int()
		got := must.Must(strconv.Atoi(strconv.Itoa(exp)))
		assert.Equal(t, exp, got)
	})
	t.Run("rainy", func(t *testing.T) {
		pv := assert.Panic(t, func() {
			_ = must.Must(strconv.Atoi("not a number"))
		})
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.Error(t, err)
	})
}

func TestMust2(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		a, b := must.Must2("foo", 42, nil)
		assert.Equal(t, "foo", a)
		assert.Equal(t, 42, b)
	})
	t.Run("rainy", func(t *testing.T) {
		assert.Panic(t, func() {
			_, _ = must.Must2("foo", 42, rnd.Error())
		})
	})
}
