package tour

import (
	"fmt"
	"strconv"

	"collectiontour/internal/kv"
)

// Optional is the outcome of a lookup that may find nothing.
type Optional struct {
	Present bool `json:"present" yaml:"present"`
	Value   any  `json:"value,omitempty" yaml:"value,omitempty"`
}

func optional[T any](v T, ok bool) Optional {
	if !ok {
		return Optional{}
	}
	return Optional{Present: true, Value: v}
}

func (o Optional) String() string {
	if !o.Present {
		return "absent"
	}
	return fmt.Sprintf("present(%v)", o.Value)
}

func display(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	case map[string]int:
		return kv.Format(x)
	case map[string]string:
		return kv.Format(x)
	case map[int]string:
		return kv.Format(x)
	default:
		return fmt.Sprint(v)
	}
}
