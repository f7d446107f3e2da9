package text

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrOutOfRange reports a byte range outside the string or with start > end.
	ErrOutOfRange = errors.New("byte range out of bounds")
	// ErrNotCharBoundary reports a byte range that would split a character.
	ErrNotCharBoundary = errors.New("byte index is not a char boundary")
)

// SliceError describes a rejected byte-range slice.
type SliceError struct {
	Start, End int
	Len        int
	Err        error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("slice [%d:%d] of string of length %d: %v", e.Start, e.End, e.Len, e.Err)
}

func (e *SliceError) Unwrap() error { return e.Err }

// IsCharBoundary reports whether byte offset i starts a character in s (or is
// len(s)).
func IsCharBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}

// Slice returns s[start:end]. Both offsets must lie within s, start must not
// exceed end, and both must fall on character boundaries; otherwise a
// *SliceError is returned and nothing is truncated.
func Slice(s string, start, end int) (string, error) {
	if start < 0 || end > len(s) || start > end {
		return "", &SliceError{Start: start, End: end, Len: len(s), Err: ErrOutOfRange}
	}
	if !IsCharBoundary(s, start) || !IsCharBoundary(s, end) {
		return "", &SliceError{Start: start, End: end, Len: len(s), Err: ErrNotCharBoundary}
	}
	return s[start:end], nil
}

// MustSlice is like Slice but panics with the *SliceError.
func MustSlice(s string, start, end int) string {
	out, err := Slice(s, start, end)
	if err != nil {
		panic(err)
	}
	return out
}
