// Package cell defines Cell, a value that is exactly one of an integer, a
// float or a text payload. It lets a single sequence hold mixed values.
package cell

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind names a Cell variant.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindText  Kind = "text"
)

// Cell is implemented only by Int, Float and Text.
type Cell interface {
	Kind() Kind
	String() string
	sealed()
}

// Int is the integer variant.
type Int int32

// Float is the floating-point variant.
type Float float64

// Text is the text variant.
type Text string

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Text) Kind() Kind  { return KindText }

func (c Int) String() string   { return "Int(" + strconv.FormatInt(int64(c), 10) + ")" }
func (c Float) String() string { return "Float(" + strconv.FormatFloat(float64(c), 'g', -1, 64) + ")" }
func (c Text) String() string  { return "Text(" + strconv.Quote(string(c)) + ")" }

func (Int) sealed()   {}
func (Float) sealed() {}
func (Text) sealed()  {}

// Describe returns a one-line description of c using a type switch over the
// closed set of variants.
func Describe(c Cell) string {
	switch v := c.(type) {
	case Int:
		return fmt.Sprintf("integer %d", int32(v))
	case Float:
		return fmt.Sprintf("float %g", float64(v))
	case Text:
		return fmt.Sprintf("text %q", string(v))
	default:
		return "unknown cell"
	}
}

// Tagged is the serialized form of a Cell.
type Tagged struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Value any  `json:"value" yaml:"value"`
}

// Tag converts c to its serialized form.
func Tag(c Cell) Tagged {
	switch v := c.(type) {
	case Int:
		return Tagged{Kind: KindInt, Value: int32(v)}
	case Float:
		return Tagged{Kind: KindFloat, Value: float64(v)}
	case Text:
		return Tagged{Kind: KindText, Value: string(v)}
	}
	return Tagged{}
}

// MarshalJSON encodes the variant together with its payload.
func (c Int) MarshalJSON() ([]byte, error)   { return json.Marshal(Tag(c)) }
func (c Float) MarshalJSON() ([]byte, error) { return json.Marshal(Tag(c)) }
func (c Text) MarshalJSON() ([]byte, error)  { return json.Marshal(Tag(c)) }
