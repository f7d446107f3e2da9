package tour

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"collectiontour/internal/cell"
	"collectiontour/internal/text"
)

// greetingInfo is the report form of one greeting.
type greetingInfo struct {
	Language string     `json:"language" yaml:"language"`
	Text     string     `json:"text" yaml:"text"`
	Stats    text.Stats `json:"stats" yaml:"stats"`
}

func stepStrings(e *Env) error {
	empty := text.NewBuffer()
	e.Record("empty len", empty.Len())

	const literal = "this is a string"
	s := text.From(literal)
	e.Record("from literal", s.String())
	e.Record("from Stringer", text.ToString(cell.Float(3.3)).String())

	for _, g := range text.Greetings() {
		st := text.Measure(g.Text)
		e.RecordAs(g.Language,
			fmt.Sprintf("%s (%d bytes, %d runes, %d graphemes)", g.Text, st.Bytes, st.Runes, st.Graphemes),
			greetingInfo{Language: g.Language, Text: g.Text, Stats: st})
	}

	// Olá is stored precomposed; NFD splits the accent into its own code point.
	n := text.Normalize("Ol\u00e1")
	e.RecordAs("Olá normalization", fmt.Sprintf("NFC %d bytes, NFD %d bytes", n.NFCBytes, n.NFDBytes), n)
	return nil
}

func stepPush(e *Env) error {
	s := text.From("this is a string")
	s.PushStr(", I added this with push()")
	s.Push('!')

	s2 := "a &str."
	s.PushStr(s2)

	e.Record("s", s.String())
	e.Record("s2 still usable", s2)
	return nil
}

func stepConcat(e *Env) error {
	s1 := text.From("Hello, ")
	s2 := text.From("world!")
	s3 := s1.Plus(s2.String())

	e.Record("s3", s3.String())
	e.Record("s1 moved", s1.Moved())
	e.Record("s2 moved", s2.Moved())

	t1, t2, t3 := text.From("tic"), text.From("tac"), text.From("toe")
	chained := t1.Plus("-").Plus(t2.String()).Plus("-").Plus(t3.String())
	e.Record("chained", chained.String())

	// t1 was consumed by the chain
	t1 = text.From("tic")
	formatted := text.Join3(t1, t2, t3, "-")
	e.Record("formatted", formatted)
	e.Record("operands usable after formatting", !t1.Moved() && !t2.Moved() && !t3.Moved())
	return nil
}

func stepSlicing(e *Env) error {
	const hello = "Здравствуйте"

	s, err := text.Slice(hello, 0, 4)
	if err != nil {
		return fmt.Errorf("slice aligned range: %w", err)
	}
	e.Record("hello[0:4]", s)

	_, err = text.Slice(hello, 0, 1)
	if !errors.Is(err, text.ErrNotCharBoundary) {
		return fmt.Errorf("misaligned slice was not rejected: %v", err)
	}
	e.Record("hello[0:1]", "rejected: "+err.Error())
	e.Aside("MustSlice(hello, 0, 1) is not executed: it panics with the same error")
	e.Log.Debug("slice rejected", zap.Error(err))

	const namaste = "नमस्ते"
	var chars []string
	for _, r := range text.Chars(namaste) {
		e.Print("%c", r)
		chars = append(chars, string(r))
	}
	var bytes []int
	for b := range text.Bytes(namaste) {
		e.Print("%d", b)
		bytes = append(bytes, int(b))
	}
	graphemes := slices.Collect(text.Graphemes(namaste))

	e.RecordAs("chars", quoteAll(chars), chars)
	e.RecordAs("bytes", fmt.Sprint(bytes), bytes)
	e.RecordAs("graphemes", quoteAll(graphemes), graphemes)
	return nil
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(q, ", ") + "]"
}
