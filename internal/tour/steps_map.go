package tour

import (
	"fmt"

	"go.uber.org/zap"

	"collectiontour/internal/kv"
	"collectiontour/internal/wordfreq"
)

func stepMaps(e *Env) error {
	scores := make(map[string]int)
	scores["Blue"] = 10
	scores["Yellow"] = 50
	e.Record("scores", scores)

	teams := []string{"Blue", "Yellow"}
	initial := []int{10, 50}
	zipped, err := kv.Zip(teams, initial)
	if err != nil {
		return fmt.Errorf("zip teams: %w", err)
	}
	e.Record("zipped", zipped)

	fieldName := "Favorite color"
	fieldValue := "Blue"
	owned := make(map[string]string)
	kv.Move(owned, &fieldName, &fieldValue)
	e.Record("owned", owned)
	e.Record("field_name after move", fieldName)
	e.Record("field_value after move", fieldValue)

	byID := make(map[int]string)
	for i, team := range teams {
		byID[i+1] = team
	}
	e.Record("by id", byID)
	return nil
}

func stepEntries(e *Env) error {
	scores := map[string]int{"Blue": 10}

	blue, ok := kv.Get(scores, "Blue")
	e.Record("get Blue", optional(blue, ok))
	red, ok := kv.Get(scores, "Red")
	e.Record("get Red", optional(red, ok))

	old, _ := kv.Insert(scores, "Blue", 25)
	e.Record("overwrote Blue", fmt.Sprintf("%d -> %d", old, scores["Blue"]))

	e.Record("insert-if-absent Yellow", kv.InsertIfAbsent(scores, "Yellow", 50))
	e.Record("insert-if-absent Blue", kv.InsertIfAbsent(scores, "Blue", 50))
	e.Record("scores", scores)

	for _, k := range kv.Keys(scores) {
		e.Print("%s: %d", k, scores[k])
	}
	return nil
}

func stepWordFreq(e *Env) error {
	input := e.Config.WordFreqText

	c := wordfreq.NewCounter()
	c.AddText(input)

	e.Record("text", input)
	e.Record("counts", c.Map())
	e.Record("total", c.Total())
	e.Record("distinct", c.Distinct())

	top := c.Top(3)
	for i, ent := range top {
		e.Print("%d. %s x%d", i+1, ent.Word, ent.Count)
	}
	e.RecordAs("top", fmt.Sprint(top), top)
	e.Log.Debug("words counted", zap.Int("total", c.Total()), zap.Int("distinct", c.Distinct()))
	return nil
}
