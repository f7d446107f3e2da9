package tour

import (
	"strings"

	"go.uber.org/zap"

	"collectiontour/internal/cell"
	"collectiontour/internal/seq"
)

func stepVectors(e *Env) error {
	empty := seq.New[int32]()
	prefilled := seq.Of[int32](1, 2, 3)

	v := seq.New[int32]()
	for _, x := range []int32{5, 6, 7, 8, 9} {
		v.Push(x)
	}

	e.Record("empty", empty)
	e.Record("empty is empty", empty.IsEmpty())
	e.Record("prefilled", prefilled)
	e.Record("pushed", v)
	e.Record("len", v.Len())
	e.Log.Debug("sequences built", zap.Int("pushed", v.Len()))
	return nil
}

func stepScope(e *Env) error {
	{
		inner := seq.Of[int32](1, 2, 3, 4)
		e.Record("inner", inner)
		e.Record("inner len", inner.Len())
	}
	// inner is not addressable past this point.
	e.Record("inner reachable after scope", false)
	e.Aside("inner's backing array is unreachable now and is reclaimed by the garbage collector")
	return nil
}

func stepAccess(e *Env) error {
	v := seq.Of[int32](1, 2, 3, 4, 5)

	third := v.At(2)
	e.Record("third via At(2)", third)
	got, ok := v.Get(2)
	e.Record("third via Get(2)", optional(got, ok))
	missing, ok := v.Get(100)
	e.Record("Get(100)", optional(missing, ok))

	// At(100) would panic; show the message without running it.
	e.Aside("At(100) is not executed: it would panic with %q", (&seq.IndexError{Index: 100, Len: v.Len()}).Error())
	e.Log.Debug("lookup", zap.Int32("third", third))
	return nil
}

func stepIterate(e *Env) error {
	v := seq.Of[int32](1, 2, 3, 4, 5)
	before := v.Len()

	v.Each(func(_ int, x int32) {
		e.Print("int in vec: %d", x)
	})
	e.Record("before", seq.Of(v.Values()...))

	seq.AddOffset(v, e.Config.Offset)

	v.Each(func(_ int, x int32) {
		e.Print("int in vec: %d", x)
	})
	e.Record("offset", e.Config.Offset)
	e.Record("after", seq.Of(v.Values()...))
	e.Record("len unchanged", v.Len() == before)
	return nil
}

func stepCells(e *Env) error {
	row := seq.Of[cell.Cell](
		cell.Int(3),
		cell.Float(3.3),
		cell.Text("three"),
	)

	tagged := make([]cell.Tagged, 0, row.Len())
	kinds := make([]string, 0, row.Len())
	row.Each(func(_ int, c cell.Cell) {
		tagged = append(tagged, cell.Tag(c))
		kinds = append(kinds, string(c.Kind()))
		e.Print("%s", cell.Describe(c))
	})

	e.RecordAs("row", row.String(), tagged)
	e.RecordAs("kinds", strings.Join(kinds, ", "), kinds)
	return nil
}
