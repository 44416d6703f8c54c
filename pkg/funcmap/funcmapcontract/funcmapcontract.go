// Package funcmapcontract contains the behavioral specification of the
// funcmap.Map container, expressed as a reusable contract.
package funcmapcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/funcmap/internal/spechelper"
	"go.llib.dev/funcmap/pkg/funcmap"
	"go.llib.dev/funcmap/pkg/zerokit"
	"go.llib.dev/funcmap/port/contract"
	"go.llib.dev/funcmap/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Map returns the contract that any maker of a funcmap.Map must fulfil.
func Map[K comparable, V any](make contract.Make[*funcmap.Map[K, V]], opts ...MapOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("storing and retrieving entries", func(t *testcase.T) {
		var m = make(t)

		var (
			keys []K
			vals []V
		)
		t.Random.Repeat(3, 7, func() {
			keys = append(keys, random.Unique(func() K { return c.makeK(t) }, keys...))
			vals = append(vals, c.makeV(t))
		})

		for i, k := range keys {
			assert.Equal(t, m.Len(), i)
			_, ok := m.Lookup(k)
			assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", k))
			assert.Empty(t, m.Get(k), "zero value was expected for getting a not stored key")

			m.Set(k, vals[i])
			assert.Equal(t, m.Len(), i+1)
			got, ok := m.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, vals[i], got)
			assert.Equal(t, vals[i], m.Get(k))
		}

		kNoise := random.Unique(func() K { return c.makeK(t) }, keys...)
		vNoise := c.makeV(t)
		m.Set(kNoise, vNoise)
		assert.Equal(t, len(keys)+1, m.Len())
		m.Delete(kNoise)
		assert.Equal(t, len(keys), m.Len())
		_, ok := m.Lookup(kNoise)
		assert.False(t, ok)

		assert.ContainsExactly(t, keys, m.Keys())
		assert.ContainsExactly(t, vals, m.Values())
	})

	s.Test("keys are unique in the container", func(t *testcase.T) {
		var m = make(t)
		k := c.makeK(t)
		t.Random.Repeat(3, 7, func() {
			m.Set(k, c.makeV(t))
		})
		assert.Equal(t, 1, m.Len())
		exp := c.makeV(t)
		m.Set(k, exp)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, exp, m.Get(k))
		m.Delete(k)
		assert.Equal(t, 0, m.Len())
	})

	s.Test("insertion order is observable", func(t *testcase.T) {
		var (
			m    = make(t)
			keys = c.makeKeys(t)
			vals []V
		)
		for _, k := range keys {
			v := c.makeV(t)
			vals = append(vals, v)
			m.Set(k, v)
		}
		assert.Equal(t, keys, m.Keys())
		assert.Equal(t, vals, m.Values())

		var gotKeys []K
		for k, v := range m.Iter() {
			gotKeys = append(gotKeys, k)
			assert.Equal(t, m.Get(k), v)
		}
		assert.Equal(t, keys, gotKeys)

		t.Log("overwriting an entry keeps the original position of its key")
		ov := c.makeV(t)
		m.Set(keys[0], ov)
		assert.Equal(t, keys, m.Keys())
		assert.Equal(t, ov, m.Get(keys[0]))
	})

	s.Test("Filter and Sweep partition the entries", func(t *testcase.T) {
		var (
			m    = make(t)
			keys = c.makeKeys(t)
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
		}
		var in = map[K]struct{}{}
		for _, k := range keys {
			if t.Random.Bool() {
				in[k] = struct{}{}
			}
		}
		predicate := func(k K, v V) bool {
			_, ok := in[k]
			return ok
		}
		var (
			kept  = m.Filter(predicate)
			swept = m.Sweep(predicate)
		)
		assert.Equal(t, m.Len(), kept.Len()+swept.Len())
		for _, k := range keys {
			_, inKept := kept.Lookup(k)
			_, inSwept := swept.Lookup(k)
			assert.True(t, inKept != inSwept,
				"every entry must land in exactly one of the Filter and Sweep results")
		}
		t.Log("the receiver is left untouched")
		assert.Equal(t, keys, m.Keys())
	})

	s.Test("Every and Some are De Morgan duals", func(t *testcase.T) {
		var (
			m    = make(t)
			keys = c.makeKeys(t)
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
		}
		var in = map[K]struct{}{}
		for _, k := range keys {
			if t.Random.Bool() {
				in[k] = struct{}{}
			}
		}
		predicate := func(k K, v V) bool {
			_, ok := in[k]
			return ok
		}
		assert.Equal(t,
			m.Every(predicate),
			!m.Some(func(k K, v V) bool { return !predicate(k, v) }))
	})

	s.Test("Every is vacuously true and Some is false on an empty container", func(t *testcase.T) {
		var m = make(t)
		assert.True(t, m.Every(func(K, V) bool { return false }))
		assert.False(t, m.Some(func(K, V) bool { return true }))
	})

	s.Test("Reduce folds every entry once, in insertion order", func(t *testcase.T) {
		var (
			m    = make(t)
			keys = c.makeKeys(t)
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
		}
		count := funcmap.Reduce(m, 0, func(acc int, k K, v V) int {
			return acc + 1
		})
		assert.Equal(t, m.Len(), count)

		folded := funcmap.Reduce(m, []K(nil), func(acc []K, k K, v V) []K {
			return append(acc, k)
		})
		assert.Equal(t, keys, folded)
	})

	s.Test("Collect yields one element per entry, in insertion order", func(t *testcase.T) {
		var (
			m    = make(t)
			keys = c.makeKeys(t)
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
		}
		got := funcmap.Collect(m, func(k K, v V) string {
			return fmt.Sprintf("%v=%v", k, v)
		})
		assert.Equal(t, m.Len(), len(got))
		var (
			ks = m.Keys()
			vs = m.Values()
		)
		for i, r := range got {
			assert.Equal(t, fmt.Sprintf("%v=%v", ks[i], vs[i]), r)
		}
	})

	s.Test("Random and RandomKey select members of the container", func(t *testcase.T) {
		var m = make(t)
		t.Random.Repeat(3, 7, func() {
			m.Set(c.makeK(t), c.makeV(t))
		})
		t.Random.Repeat(3, 7, func() {
			v, err := m.Random()
			assert.NoError(t, err)
			assert.Contains(t, m.Values(), v)

			k, err := m.RandomKey()
			assert.NoError(t, err)
			assert.Contains(t, m.Keys(), k)
		})
	})

	s.Test("random selection on an empty container is an error", func(t *testcase.T) {
		var m = make(t)
		_, err := m.Random()
		assert.ErrorIs(t, err, funcmap.ErrEmpty)
		_, err = m.RandomKey()
		assert.ErrorIs(t, err, funcmap.ErrEmpty)
	})

	s.Test("Intersect keeps the keys present in both, valued from the receiver", func(t *testcase.T) {
		var (
			m      = make(t)
			keys   = c.makeKeys(t)
			other  = map[K]V{}
			shared = map[K]struct{}{}
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
			if t.Random.Bool() {
				other[k] = c.makeV(t)
				shared[k] = struct{}{}
			}
		}
		other[random.Unique(func() K { return c.makeK(t) }, keys...)] = c.makeV(t)

		got := m.Intersect(other)
		assert.Equal(t, len(shared), got.Len())
		for k := range shared {
			v, ok := got.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, m.Get(k), v, "values are expected to come from the receiver")
		}
	})

	s.Test("Difference keeps the keys present in exactly one of the two", func(t *testcase.T) {
		var (
			m     = make(t)
			keys  = c.makeKeys(t)
			other = map[K]V{}
		)
		for _, k := range keys {
			m.Set(k, c.makeV(t))
			if t.Random.Bool() {
				other[k] = c.makeV(t)
			}
		}
		onlyOther := random.Unique(func() K { return c.makeK(t) }, keys...)
		other[onlyOther] = c.makeV(t)

		got := m.Difference(other)
		for _, k := range keys {
			_, inOther := other[k]
			_, ok := got.Lookup(k)
			assert.Equal(t, !inOther, ok)
		}
		v, ok := got.Lookup(onlyOther)
		assert.True(t, ok)
		assert.Equal(t, other[onlyOther], v)
	})

	s.Test("Set returns the receiver to allow chaining", func(t *testcase.T) {
		var m = make(t)
		got := m.Set(c.makeK(t), c.makeV(t)).Set(c.makeK(t), c.makeV(t))
		assert.True(t, got == m, "chaining is expected to happen on the same instance")
	})

	return s.AsSuite(fmt.Sprintf("funcmap.Map[%T, %T]", *new(K), *new(V)))
}

type MapOption[K comparable, V any] interface {
	option.Option[MapConfig[K, V]]
}

type MapConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ MapOption[string, int] = MapConfig[string, int]{}

func (c MapConfig[K, V]) Configure(o *MapConfig[K, V]) {
	o.MakeK = zerokit.Coalesce(c.MakeK, o.MakeK)
	o.MakeV = zerokit.Coalesce(c.MakeV, o.MakeV)
}

func (c MapConfig[K, V]) makeK(tb testing.TB) K {
	return zerokit.Coalesce(c.MakeK, spechelper.MakeValue[K])(tb)
}

func (c MapConfig[K, V]) makeV(tb testing.TB) V {
	return zerokit.Coalesce(c.MakeV, spechelper.MakeValue[V])(tb)
}

// makeKeys creates a list of unique keys, at least two of them.
func (c MapConfig[K, V]) makeKeys(t *testcase.T) []K {
	var keys []K
	t.Random.Repeat(2, 7, func() {
		keys = append(keys, random.Unique(func() K { return c.makeK(t) }, keys...))
	})
	return keys
}
