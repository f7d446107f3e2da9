// Package seq provides Vec, a growable ordered sequence with both panicking
// and optional element access.
package seq

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// IndexError is the panic value raised by Vec.At for an out-of-range index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: the len is %d but the index is %d", e.Len, e.Index)
}

// Vec is a growable, insertion-ordered sequence of same-typed elements.
// The zero value is an empty Vec ready to use.
type Vec[T any] struct {
	items []T
}

// New returns an empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// Of returns a Vec pre-populated with values. The input slice is copied.
func Of[T any](values ...T) *Vec[T] {
	return &Vec[T]{items: slices.Clone(values)}
}

// Push appends x to the end of the sequence.
func (v *Vec[T]) Push(x T) {
	v.items = append(v.items, x)
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// IsEmpty reports whether the sequence has no elements.
func (v *Vec[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// At returns the element at index i. It panics with *IndexError when i is
// out of range; callers that cannot guarantee the bound should use Get.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(&IndexError{Index: i, Len: len(v.items)})
	}
	return v.items[i]
}

// Get returns the element at index i and true, or the zero value and false
// when i is out of range. It never panics.
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// Each calls fn with a copy of every element in order.
func (v *Vec[T]) Each(fn func(i int, x T)) {
	for i, x := range v.items {
		fn(i, x)
	}
}

// EachMut calls fn with a pointer to every element in order so the element
// can be updated in place. fn must not retain the pointer.
func (v *Vec[T]) EachMut(fn func(i int, x *T)) {
	for i := range v.items {
		fn(i, &v.items[i])
	}
}

// All returns an iterator over index/value pairs.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Values returns a copy of the elements.
func (v *Vec[T]) Values() []T {
	return slices.Clone(v.items)
}

// String renders the sequence as [a, b, c].
func (v *Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// AddOffset adds delta to every element of an integer Vec in place.
// Addition follows Go's integer semantics: a sum past the bounds of T wraps
// around in two's complement rather than panicking.
func AddOffset[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v *Vec[T], delta T) {
	v.EachMut(func(_ int, x *T) {
		*x += delta
	})
}

// MarshalJSON encodes the elements as a JSON array.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	if v.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.items)
}

// MarshalYAML encodes the elements as a YAML sequence.
func (v *Vec[T]) MarshalYAML() (any, error) {
	if v.items == nil {
		return []T{}, nil
	}
	return v.items, nil
}
