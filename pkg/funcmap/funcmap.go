// Package funcmap provides Map, a mutable associative container that keeps
// the insertion order of its keys, augmented with functional helper
// operations such as filtering, folding, set-like comparison against plain
// maps, and random element selection.
//
// The funcmap package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
package funcmap

import (
	"iter"
	"math/rand"
	"time"

	"go.llib.dev/funcmap/pkg/errorkit"
	"go.llib.dev/funcmap/pkg/mapkit"
	"go.llib.dev/funcmap/pkg/must"
	"go.llib.dev/funcmap/pkg/zerokit"
)

// ErrEmpty is returned when a random selection is requested from a Map
// that has no entries.
const ErrEmpty errorkit.Error = "funcmap: the map is empty"

// Map is an associative container from K to V with unique keys.
//
// Entries are enumerated in insertion order: overwriting a key keeps the
// key's original position, deleting and re-inserting moves it to the end.
// The zero value is ready to use.
//
// Map is not safe for concurrent use. It assumes exclusive-owner access
// during any call; callers that share an instance between goroutines must
// synchronize on their own, or work on a disjoint Clone.
type Map[K comparable, V any] struct {
	// Rand is the entropy source used by Random and RandomKey.
	//
	// Default: a package-level time-seeded source.
	Rand *rand.Rand

	values map[K]V
	order  []K
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// FromMap creates a Map holding the entries of the passed plain map.
//
// Plain maps have no iteration order, so the initial insertion order of the
// returned Map is arbitrary, but it stays stable once fixed.
func FromMap[K comparable, V any](m map[K]V) *Map[K, V] {
	var out Map[K, V]
	for _, e := range mapkit.ToSlice(m) {
		out.Set(e.Key, e.Value)
	}
	return &out
}

func (m *Map[K, V]) init() {
	if m.values == nil {
		m.values = make(map[K]V)
	}
}

// Set inserts or overwrites the entry of the given key,
// and returns the receiver so calls can be chained.
func (m *Map[K, V]) Set(key K, val V) *Map[K, V] {
	m.init()
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = val
	return m
}

// Lookup returns the value stored for the given key,
// and whether the key is present.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.values[key]
	return val, ok
}

// Get returns the value stored for the given key,
// or the zero value of V when the key is absent.
func (m *Map[K, V]) Get(key K) V {
	return m.values[key]
}

// Delete removes the entry of the given key, along with its position in the
// insertion order. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.values)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, len(m.order))
	for _, k := range m.order {
		vals = append(vals, m.values[k])
	}
	return vals
}

// Entries returns the entries in insertion order.
func (m *Map[K, V]) Entries() []mapkit.Entry[K, V] {
	var es []mapkit.Entry[K, V]
	for _, k := range m.order {
		es = append(es, mapkit.Entry[K, V]{Key: k, Value: m.values[k]})
	}
	return es
}

// ToMap returns the contents as a plain map, detached from the receiver.
func (m *Map[K, V]) ToMap() map[K]V {
	return mapkit.Clone(m.values)
}

// Iter iterates over the entries in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the receiver, insertion order included.
func (m *Map[K, V]) Clone() *Map[K, V] {
	var out = m.derived()
	for _, k := range m.order {
		out.Set(k, m.values[k])
	}
	return out
}

// derived creates an empty Map that inherits the receiver's entropy source,
// so injected determinism survives derivation.
func (m *Map[K, V]) derived() *Map[K, V] {
	return &Map[K, V]{Rand: m.Rand}
}

var defaultRandom = rand.New(rand.NewSource(time.Now().Unix()))

// Random returns a value selected at random from the current values.
// It returns ErrEmpty when the Map has no entries.
func (m *Map[K, V]) Random() (V, error) {
	if m.Len() == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return m.values[m.order[m.randomIndex()]], nil
}

// RandomKey returns a key selected at random from the current keys.
// It returns ErrEmpty when the Map has no entries.
func (m *Map[K, V]) RandomKey() (K, error) {
	if m.Len() == 0 {
		var zero K
		return zero, ErrEmpty
	}
	return m.order[m.randomIndex()], nil
}

// randomIndex selects an index as floor(n * uniform[0,1)),
// where n is the canonical entry count used both as bound and for indexing.
func (m *Map[K, V]) randomIndex() int {
	rnd := zerokit.Coalesce(m.Rand, defaultRandom)
	return int(float64(len(m.order)) * rnd.Float64())
}

// Filter returns a new Map holding the entries for which the predicate
// holds, keeping their relative insertion order.
// The receiver is left untouched.
func (m *Map[K, V]) Filter(predicate func(K, V) bool) *Map[K, V] {
	var out = m.derived()
	for _, k := range m.order {
		if v := m.values[k]; predicate(k, v) {
			out.Set(k, v)
		}
	}
	return out
}

// Sweep returns a new Map holding the entries for which the predicate does
// not hold. It is the complement of Filter over the same predicate:
// Filter and Sweep together partition the receiver.
func (m *Map[K, V]) Sweep(predicate func(K, V) bool) *Map[K, V] {
	return m.Filter(func(k K, v V) bool {
		return !predicate(k, v)
	})
}

// Every reports whether the predicate holds for all entries.
// It is vacuously true on an empty Map,
// and stops at the first entry that fails the predicate.
func (m *Map[K, V]) Every(predicate func(K, V) bool) bool {
	for _, k := range m.order {
		if !predicate(k, m.values[k]) {
			return false
		}
	}
	return true
}

// Some reports whether the predicate holds for at least one entry.
// It is false on an empty Map,
// and stops at the first entry that passes the predicate.
func (m *Map[K, V]) Some(predicate func(K, V) bool) bool {
	for _, k := range m.order {
		if predicate(k, m.values[k]) {
			return true
		}
	}
	return false
}

// Intersect returns the receiver's entries whose key is also present in the
// other map. Values are taken from the receiver; value equality is not
// considered. The other map is only read.
func (m *Map[K, V]) Intersect(other map[K]V) *Map[K, V] {
	return m.Filter(func(k K, v V) bool {
		_, ok := mapkit.Lookup(other, k)
		return ok
	})
}

// Difference returns the entries whose key is present in exactly one of the
// receiver and the other map. A key present in both is excluded even when
// the values differ.
//
// The receiver's entries come first in their insertion order; the entries
// taken from the other map follow in arbitrary order, as plain maps have
// none. The other map is only read.
func (m *Map[K, V]) Difference(other map[K]V) *Map[K, V] {
	var out = m.Filter(func(k K, v V) bool {
		_, ok := mapkit.Lookup(other, k)
		return !ok
	})
	for _, k := range mapkit.Keys(other) {
		if _, ok := m.values[k]; !ok {
			out.Set(k, other[k])
		}
	}
	return out
}

// IntersectElements returns the receiver's entries whose key is present in
// the other map with an equal value. It is always a subset of Intersect,
// and equals it when all the shared keys hold equal values.
func IntersectElements[K, V comparable](m *Map[K, V], other map[K]V) *Map[K, V] {
	return m.Filter(func(k K, v V) bool {
		ov, ok := mapkit.Lookup(other, k)
		return ok && ov == v
	})
}

// Collect applies fn on every entry in insertion order and returns the
// results as a slice with one element per entry.
// Collect panics when fn fails; use CollectErr for the error returning variant.
func Collect[R any, K comparable, V any](m *Map[K, V], fn func(K, V) R) []R {
	return must.Must(CollectErr[R](m, func(k K, v V) (R, error) {
		return fn(k, v), nil
	}))
}

// CollectErr applies fn on every entry in insertion order and returns the
// results as a slice with one element per entry.
func CollectErr[R any, K comparable, V any](m *Map[K, V], fn func(K, V) (R, error)) ([]R, error) {
	var out = make([]R, 0, m.Len())
	for _, k := range m.order {
		r, err := fn(k, m.values[k])
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Reduce left folds the entries in insertion order,
// starting from the initial value and threading the accumulator through
// each entry. Reduce panics when the reducer fails;
// use ReduceErr for the error returning variant.
func Reduce[R any, K comparable, V any](m *Map[K, V], initial R, reducer func(R, K, V) R) R {
	return must.Must(ReduceErr(m, initial, func(r R, k K, v V) (R, error) {
		return reducer(r, k, v), nil
	}))
}

// ReduceErr left folds the entries in insertion order,
// starting from the initial value and threading the accumulator through
// each entry.
func ReduceErr[R any, K comparable, V any](m *Map[K, V], initial R, reducer func(R, K, V) (R, error)) (R, error) {
	var result = initial
	for _, k := range m.order {
		r, err := reducer(result, k, m.values[k])
		if err != nil {
			return result, err
		}
		result = r
	}
	return result, nil
}
