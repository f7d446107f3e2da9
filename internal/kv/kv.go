// Package kv holds small helpers for Go maps: building a map from parallel
// key and value slices, optional lookup, insert-if-absent and moving a value
// into a map.
package kv

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrLengthMismatch is returned by Zip when keys and values differ in length.
var ErrLengthMismatch = errors.New("keys and values have different lengths")

// Zip pairs keys[i] with values[i]. Later duplicates overwrite earlier ones.
func Zip[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("zip %d keys with %d values: %w", len(keys), len(values), ErrLengthMismatch)
	}
	m := make(map[K]V, len(keys))
	for i, k := range keys {
		m[k] = values[i]
	}
	return m, nil
}

// Get returns the value for k and whether it was present.
func Get[K comparable, V any](m map[K]V, k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// Insert stores v under k and returns the previous value, if any.
func Insert[K comparable, V any](m map[K]V, k K, v V) (V, bool) {
	old, ok := m[k]
	m[k] = v
	return old, ok
}

// InsertIfAbsent stores def under k only when k is missing, and returns the
// value now held for k.
func InsertIfAbsent[K comparable, V any](m map[K]V, k K, def V) V {
	if v, ok := m[k]; ok {
		return v
	}
	m[k] = def
	return def
}

// Move stores *k and *v in m and resets both sources to their zero values,
// so the map becomes the only holder.
func Move[K comparable, V any](m map[K]V, k *K, v *V) {
	m[*k] = *v
	var zk K
	var zv V
	*k, *v = zk, zv
}

// Keys returns the keys of m in sorted order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Format renders m as {k: v, ...} with keys in sorted order.
func Format[K cmp.Ordered, V any](m map[K]V) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range Keys(m) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", fmtKey(k), m[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func fmtKey[K cmp.Ordered](k K) string {
	if s, ok := any(k).(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(k)
}
