package tour

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"collectiontour/internal/config"
	"collectiontour/internal/logging"
	"collectiontour/internal/render"
	"collectiontour/internal/seq"
	"collectiontour/internal/text"
	"collectiontour/internal/wordfreq"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRunner(t *testing.T, cfg config.TourConfig) (*Runner, *bytes.Buffer) {
	t.Helper()
	r, err := render.New(render.Options{Plain: true})
	require.NoError(t, err)
	var out bytes.Buffer
	return NewRunner(cfg, &out, r, nil), &out
}

func defaultTour() config.TourConfig {
	return config.DefaultConfig().Tour
}

func fact(t *testing.T, rep *Report, slug, label string) any {
	t.Helper()
	sr, ok := rep.Step(slug)
	require.True(t, ok, "step %s missing from report", slug)
	v, ok := sr.Fact(label)
	require.True(t, ok, "fact %q missing from step %s", label, slug)
	return v
}

func TestSteps_OrderAndUniqueness(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 12)

	slugs := make(map[string]bool)
	for i, s := range steps {
		assert.Equal(t, i+1, s.ID)
		assert.False(t, slugs[s.Slug], "duplicate slug %s", s.Slug)
		slugs[s.Slug] = true
		assert.NotEmpty(t, s.Notes)
		assert.NotNil(t, s.run)
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("3")
	require.NoError(t, err)
	assert.Equal(t, "access", s.Slug)

	s, err = Lookup(" WordFreq ")
	require.NoError(t, err)
	assert.Equal(t, 12, s.ID)

	_, err = Lookup("13")
	assert.ErrorIs(t, err, ErrUnknownStep)
	_, err = Lookup("threads")
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestSelect(t *testing.T) {
	steps, err := Select([]int{4, 3})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 3, steps[0].ID, "execution order is preserved")
	assert.Equal(t, 4, steps[1].ID)

	_, err = Select([]int{3, 99})
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestRun_AllStepsText(t *testing.T) {
	runner, out := newRunner(t, defaultTour())

	rep, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Steps, 12)
	assert.Equal(t, runner.RunID(), rep.RunID)

	got := out.String()
	for _, s := range Steps() {
		assert.Contains(t, got, fmt.Sprintf("== %d. %s: %s ==", s.ID, s.Slug, s.Title))
	}
	assert.Contains(t, got, `s3: "Hello, world!"`)
	assert.Contains(t, got, `formatted: "tic-tac-toe"`)
	assert.Contains(t, got, "Get(100): absent")
}

func TestRun_Vectors(t *testing.T) {
	r, _ := newRunner(t, defaultTour())
	rep, err := r.RunStep(context.Background(), "vectors")
	require.NoError(t, err)

	assert.Equal(t, true, fact(t, rep, "vectors", "empty is empty"))
	pushed := fact(t, rep, "vectors", "pushed").(*seq.Vec[int32])
	assert.Equal(t, []int32{5, 6, 7, 8, 9}, pushed.Values())
}

func TestRun_StringsNormalization(t *testing.T) {
	r, _ := newRunner(t, defaultTour())
	rep, err := r.RunStep(context.Background(), "strings")
	require.NoError(t, err)

	n := fact(t, rep, "strings", "Olá normalization").(text.Normalization)
	assert.Equal(t, 4, n.NFCBytes)
	assert.Equal(t, 5, n.NFDBytes)
}

func TestRun_Access(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "access")
	require.NoError(t, err)

	assert.Equal(t, int32(3), fact(t, rep, "access", "third via At(2)"))
	assert.Equal(t, Optional{Present: true, Value: int32(3)}, fact(t, rep, "access", "third via Get(2)"))
	assert.Equal(t, Optional{}, fact(t, rep, "access", "Get(100)"))
}

func TestRun_IterateAddsOffset(t *testing.T) {
	runner, out := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "iterate")
	require.NoError(t, err)

	before := fact(t, rep, "iterate", "before").(*seq.Vec[int32]).Values()
	after := fact(t, rep, "iterate", "after").(*seq.Vec[int32]).Values()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i]+50, after[i])
	}
	assert.Equal(t, true, fact(t, rep, "iterate", "len unchanged"))
	assert.Contains(t, out.String(), "int in vec: 55")
}

func TestRun_IterateCustomOffset(t *testing.T) {
	cfg := defaultTour()
	cfg.Offset = -1
	runner, _ := newRunner(t, cfg)

	rep, err := runner.RunStep(context.Background(), "4")
	require.NoError(t, err)

	after := fact(t, rep, "iterate", "after").(*seq.Vec[int32]).Values()
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, after)
}

func TestRun_Concat(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "concat")
	require.NoError(t, err)

	assert.Equal(t, "Hello, world!", fact(t, rep, "concat", "s3"))
	assert.Equal(t, true, fact(t, rep, "concat", "s1 moved"))
	assert.Equal(t, false, fact(t, rep, "concat", "s2 moved"))
	assert.Equal(t, "tic-tac-toe", fact(t, rep, "concat", "chained"))
	assert.Equal(t, "tic-tac-toe", fact(t, rep, "concat", "formatted"))
	assert.Equal(t, true, fact(t, rep, "concat", "operands usable after formatting"))
}

func TestEnv_MovedBufferPanics(t *testing.T) {
	r, err := render.New(render.Options{Plain: true})
	require.NoError(t, err)
	var out bytes.Buffer
	e := &Env{text: true, out: &out, render: r, report: &StepReport{}}

	b := text.From("tic")
	_ = b.Plus("-")

	assert.PanicsWithValue(t, text.ErrMoved, func() { e.Print("%s", b) })
	assert.PanicsWithValue(t, text.ErrMoved, func() { e.Aside("%s", b) })
	assert.PanicsWithValue(t, text.ErrMoved, func() { e.Record("b", b) })
	assert.Empty(t, out.String())
}

func TestRun_Slicing(t *testing.T) {
	runner, out := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "slicing")
	require.NoError(t, err)

	assert.Equal(t, "Зд", fact(t, rep, "slicing", "hello[0:4]"))
	rejected := fact(t, rep, "slicing", "hello[0:1]").(string)
	assert.True(t, strings.HasPrefix(rejected, "rejected: "))
	assert.Contains(t, rejected, "not a char boundary")

	assert.Equal(t, []string{"न", "म", "स", "्", "त", "े"}, fact(t, rep, "slicing", "chars"))
	assert.Len(t, fact(t, rep, "slicing", "bytes"), 18)
	assert.Contains(t, out.String(), "# MustSlice")
}

func TestRun_Push(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "push")
	require.NoError(t, err)

	assert.Equal(t, "this is a string, I added this with push()!a &str.", fact(t, rep, "push", "s"))
	assert.Equal(t, "a &str.", fact(t, rep, "push", "s2 still usable"))
}

func TestRun_Maps(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "maps")
	require.NoError(t, err)

	want := map[string]int{"Blue": 10, "Yellow": 50}
	if diff := cmp.Diff(want, fact(t, rep, "maps", "zipped")); diff != "" {
		t.Errorf("zipped mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]string{"Favorite color": "Blue"}, fact(t, rep, "maps", "owned"))
	assert.Equal(t, "", fact(t, rep, "maps", "field_name after move"))
	assert.Equal(t, map[int]string{1: "Blue", 2: "Yellow"}, fact(t, rep, "maps", "by id"))
}

func TestRun_Entries(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "entries")
	require.NoError(t, err)

	assert.Equal(t, Optional{Present: true, Value: 10}, fact(t, rep, "entries", "get Blue"))
	assert.Equal(t, Optional{}, fact(t, rep, "entries", "get Red"))
	assert.Equal(t, 50, fact(t, rep, "entries", "insert-if-absent Yellow"))
	assert.Equal(t, 25, fact(t, rep, "entries", "insert-if-absent Blue"), "existing value is kept")
	assert.Equal(t, map[string]int{"Blue": 25, "Yellow": 50}, fact(t, rep, "entries", "scores"))
}

func TestRun_WordFreq(t *testing.T) {
	runner, _ := newRunner(t, defaultTour())
	rep, err := runner.RunStep(context.Background(), "wordfreq")
	require.NoError(t, err)

	counts := fact(t, rep, "wordfreq", "counts").(map[string]int)
	assert.Equal(t, 3, counts["Rust."])
	assert.Equal(t, 2, counts["I"])
	assert.Equal(t, 1, counts["Hello"])
	assert.Equal(t, 11, fact(t, rep, "wordfreq", "total"))

	top := fact(t, rep, "wordfreq", "top").([]wordfreq.Entry)
	assert.Equal(t, wordfreq.Entry{Word: "Rust.", Count: 3}, top[0])
}

func TestRun_JSONReport(t *testing.T) {
	cfg := defaultTour()
	cfg.Format = "json"
	cfg.Only = []int{1, 5, 12}
	runner, out := newRunner(t, cfg)

	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	var decoded struct {
		RunID string `json:"run_id"`
		Steps []struct {
			Slug  string `json:"slug"`
			Facts []struct {
				Label string          `json:"label"`
				Value json.RawMessage `json:"value"`
			} `json:"facts"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Steps, 3)
	assert.Equal(t, "vectors", decoded.Steps[0].Slug)
	assert.Equal(t, "cells", decoded.Steps[1].Slug)
	assert.NotEmpty(t, decoded.RunID)

	for _, f := range decoded.Steps[0].Facts {
		if f.Label == "pushed" {
			assert.JSONEq(t, `[5,6,7,8,9]`, string(f.Value))
		}
	}
	for _, f := range decoded.Steps[1].Facts {
		if f.Label == "row" {
			assert.JSONEq(t,
				`[{"kind":"int","value":3},{"kind":"float","value":3.3},{"kind":"text","value":"three"}]`,
				string(f.Value))
		}
	}
}

func TestRun_YAMLReport(t *testing.T) {
	cfg := defaultTour()
	cfg.Format = "yaml"
	runner, out := newRunner(t, cfg)

	_, err := runner.RunStep(context.Background(), "wordfreq")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Contains(t, out.String(), "Rust.: 3")
	assert.Equal(t, runner.RunID(), decoded["run_id"])
}

func TestRun_Cancelled(t *testing.T) {
	runner, out := newRunner(t, defaultTour())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Steps)
	assert.Empty(t, out.String())
}

func TestRun_LogsWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mgr := logging.NewWithLogger(zap.New(core), config.LoggingConfig{DebugMode: true})
	r, err := render.New(render.Options{Plain: true})
	require.NoError(t, err)

	var out bytes.Buffer
	runner := NewRunner(defaultTour(), &out, r, mgr)
	_, err = runner.RunStep(context.Background(), "wordfreq")
	require.NoError(t, err)

	finished := logs.FilterMessage("tour finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, runner.RunID(), finished[0].ContextMap()["run_id"])
	assert.Equal(t, 1, logs.FilterMessage("words counted").Len())
}
