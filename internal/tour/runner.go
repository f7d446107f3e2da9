package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"collectiontour/internal/config"
	"collectiontour/internal/logging"
	"collectiontour/internal/render"
	"collectiontour/internal/text"
)

// Fact is one labelled observation made by a step.
type Fact struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// StepReport collects the facts of one step.
type StepReport struct {
	ID    int    `json:"id" yaml:"id"`
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`
	Facts []Fact `json:"facts" yaml:"facts"`
}

// Fact returns the value recorded under label.
func (r *StepReport) Fact(label string) (any, bool) {
	for _, f := range r.Facts {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// Report is the result of a run.
type Report struct {
	RunID string       `json:"run_id" yaml:"run_id"`
	Steps []StepReport `json:"steps" yaml:"steps"`
}

// Step returns the report of the step with the given slug.
func (r *Report) Step(slug string) (*StepReport, bool) {
	for i := range r.Steps {
		if r.Steps[i].Slug == slug {
			return &r.Steps[i], true
		}
	}
	return nil, false
}

// Env is what a step sees while it runs.
type Env struct {
	Ctx    context.Context
	Config config.TourConfig
	Log    *zap.Logger

	text   bool
	out    io.Writer
	render *render.Renderer
	report *StepReport
}

// Record stores a fact and, in text mode, prints it.
func (e *Env) Record(label string, value any) {
	e.RecordAs(label, display(value), value)
}

// RecordAs stores value but prints shown in text mode.
func (e *Env) RecordAs(label, shown string, value any) {
	e.report.Facts = append(e.report.Facts, Fact{Label: label, Value: value})
	if e.text {
		fmt.Fprintln(e.out, e.render.KV(label, shown))
	}
}

// Print writes a text-mode only line, such as a per-element loop trace.
func (e *Env) Print(format string, args ...any) {
	checkLive(args)
	if e.text {
		fmt.Fprintf(e.out, format+"\n", args...)
	}
}

// Aside writes commentary about code paths that are deliberately not run.
func (e *Env) Aside(format string, args ...any) {
	checkLive(args)
	if e.text {
		fmt.Fprintln(e.out, e.render.Aside(fmt.Sprintf(format, args...)))
	}
}

// checkLive panics on a moved buffer before fmt gets a chance to recover
// the panic from its String method.
func checkLive(args []any) {
	for _, a := range args {
		if b, ok := a.(*text.Buffer); ok && b.Moved() {
			panic(text.ErrMoved)
		}
	}
}

// Runner executes steps and writes their output.
type Runner struct {
	cfg    config.TourConfig
	out    io.Writer
	render *render.Renderer
	logs   *logging.Manager
	runID  string
}

// NewRunner creates a Runner writing to out. A nil logs discards logging.
func NewRunner(cfg config.TourConfig, out io.Writer, r *render.Renderer, logs *logging.Manager) *Runner {
	if logs == nil {
		logs = logging.Nop()
	}
	runID := uuid.NewString()
	return &Runner{
		cfg:    cfg,
		out:    out,
		render: r,
		logs:   logs.With(zap.String("run_id", runID)),
		runID:  runID,
	}
}

// RunID identifies this runner's output in logs and reports.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes the configured steps (all of them when tour.only is empty).
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	steps, err := Select(r.cfg.Only)
	if err != nil {
		return nil, err
	}
	return r.RunSteps(ctx, steps)
}

// RunStep executes a single step by ID or slug.
func (r *Runner) RunStep(ctx context.Context, ref string) (*Report, error) {
	s, err := Lookup(ref)
	if err != nil {
		return nil, err
	}
	return r.RunSteps(ctx, []Step{s})
}

// RunSteps executes steps in the given order. Cancellation is checked
// between steps.
func (r *Runner) RunSteps(ctx context.Context, steps []Step) (*Report, error) {
	log := r.logs.Get(logging.CategoryTour)
	report := &Report{RunID: r.runID}
	textMode := r.format() == "text"

	log.Info("tour started", zap.Int("steps", len(steps)), zap.String("format", r.format()))
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			log.Warn("tour cancelled", zap.Int("completed", i), zap.Error(err))
			return report, fmt.Errorf("tour cancelled before step %d: %w", s.ID, err)
		}

		report.Steps = append(report.Steps, StepReport{ID: s.ID, Slug: s.Slug, Title: s.Title})
		env := &Env{
			Ctx:    ctx,
			Config: r.cfg,
			Log:    r.logs.Get(s.Category).With(zap.Int("step", s.ID), zap.String("slug", s.Slug)),
			text:   textMode,
			out:    r.out,
			render: r.render,
			report: &report.Steps[len(report.Steps)-1],
		}

		if textMode {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			fmt.Fprintln(r.out, r.render.Header(s.ID, s.Slug, s.Title))
		}

		start := time.Now()
		if err := s.run(env); err != nil {
			log.Error("step failed", zap.Int("step", s.ID), zap.Error(err))
			return report, fmt.Errorf("step %d (%s): %w", s.ID, s.Slug, err)
		}
		log.Debug("step complete",
			zap.Int("step", s.ID),
			zap.Int("facts", len(env.report.Facts)),
			zap.Duration("elapsed", time.Since(start)))
	}

	if !textMode {
		if err := r.encode(report); err != nil {
			return report, err
		}
	}
	log.Info("tour finished", zap.Int("steps", len(report.Steps)))
	return report, nil
}

func (r *Runner) format() string {
	if r.cfg.Format == "" {
		return "text"
	}
	return r.cfg.Format
}

func (r *Runner) encode(report *Report) error {
	switch r.format() {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported report format %q", r.format())
	}
	return nil
}
