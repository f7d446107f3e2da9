// Package text provides a growable UTF-8 buffer with explicit ownership
// transfer on concatenation, byte-range slicing that refuses to split a
// character, and iteration by rune, byte and grapheme cluster.
package text

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMoved is the panic value raised when a Buffer is used after Plus has
// transferred its contents to a new Buffer.
var ErrMoved = errors.New("text: use of moved buffer")

// Buffer is a growable UTF-8 text buffer.
type Buffer struct {
	buf   []byte
	moved bool
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// From returns a Buffer holding a copy of s.
func From(s string) *Buffer {
	return &Buffer{buf: []byte(s)}
}

// ToString converts any value with a String method into a Buffer.
func ToString(v fmt.Stringer) *Buffer {
	return From(v.String())
}

func (b *Buffer) live() {
	if b.moved {
		panic(ErrMoved)
	}
}

// PushStr appends s.
func (b *Buffer) PushStr(s string) {
	b.live()
	b.buf = append(b.buf, s...)
}

// Push appends a single rune.
func (b *Buffer) Push(r rune) {
	b.live()
	b.buf = utf8.AppendRune(b.buf, r)
}

// Plus consumes b and returns a new Buffer holding b followed by s. Any later
// use of b panics with ErrMoved.
func (b *Buffer) Plus(s string) *Buffer {
	b.live()
	out := &Buffer{buf: append(b.buf, s...)}
	b.buf = nil
	b.moved = true
	return out
}

// Moved reports whether b has been consumed by Plus.
func (b *Buffer) Moved() bool {
	return b.moved
}

// Len returns the length in bytes.
func (b *Buffer) Len() int {
	b.live()
	return len(b.buf)
}

// RuneCount returns the number of Unicode scalar values.
func (b *Buffer) RuneCount() int {
	b.live()
	return utf8.RuneCount(b.buf)
}

// String returns the buffer contents. Borrowing a buffer through String
// leaves it usable.
func (b *Buffer) String() string {
	b.live()
	return string(b.buf)
}

// Join3 formats three buffers separated by sep without consuming any of
// them. A moved operand panics with ErrMoved.
func Join3(a, b, c *Buffer, sep string) string {
	return fmt.Sprintf("%s%s%s%s%s", a.String(), sep, b.String(), sep, c.String())
}
