// Package mapkit provides utilities for working with plain map values.
//
// The mapkit package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
// Operations that care about iteration order belong to the funcmap package;
// mapkit works on the unordered built-in map type.
package mapkit

// Keys returns the keys of the map.
// The order of the keys is arbitrary unless a sort function is passed.
func Keys[K comparable, V any](m map[K]V, sort ...func([]K)) []K {
	var ks []K
	for k := range m {
		ks = append(ks, k)
	}
	for _, sort := range sort {
		sort(ks)
	}
	return ks
}

// Values returns the values of the map.
// The order of the values is arbitrary unless a sort function is passed.
func Values[K comparable, V any](m map[K]V, sort ...func([]V)) []V {
	var vs []V
	for _, v := range m {
		vs = append(vs, v)
	}
	for _, sort := range sort {
		sort(vs)
	}
	return vs
}

// Lookup returns the value for the given key, and whether the key is present.
// Lookup on a nil map reports absence.
func Lookup[K comparable, V any](m map[K]V, k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m[k]
	return v, ok
}

// Clone creates a detached copy of the passed source map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	var out = make(map[K]V)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge merges all the passed map[K]V values into a single map[K]V.
// Merging is intentionally order dependent on how the arguments are passed.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	var out = make(map[K]V)
	for _, kvs := range maps {
		for k, v := range kvs {
			out[k] = v
		}
	}
	return out
}

// Entry is an element of a map.
//
// A map is a group of entries,
// where each entry consists of a key and a value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ToSlice turns a map into its entries.
// The order of the entries is arbitrary.
func ToSlice[K comparable, V any](m map[K]V) []Entry[K, V] {
	if m == nil {
		return nil
	}
	if len(m) == 0 {
		return []Entry[K, V]{}
	}
	var entries []Entry[K, V]
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}
