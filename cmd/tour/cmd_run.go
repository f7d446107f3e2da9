package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collectiontour/internal/logging"
	"collectiontour/internal/tour"
)

var (
	onlyIDs []int
	format  string
)

// newRunCmd runs the tour
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every step in order (or the ones selected with --only)",
		Example: `  tour run
  tour run --only 3,4 --format json`,
		Args: cobra.NoArgs,
		RunE: runTour,
	}
	addRunFlags(cmd)
	return cmd
}

// newStepCmd runs one step
func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step [id|slug]",
		Short: "Run a single step",
		Args:  cobra.ExactArgs(1),
		RunE:  runStep,
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: text, json or yaml")
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&onlyIDs, "only", nil, "Step IDs to run, comma separated")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: text, json or yaml")
}

func applyRunFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("only") {
		cfg.Tour.Only = onlyIDs
	}
	if cmd.Flags().Changed("format") {
		cfg.Tour.Format = format
	}
	return cfg.Validate()
}

func newRunner(cmd *cobra.Command) *tour.Runner {
	return tour.NewRunner(cfg.Tour, cmd.OutOrStdout(), renderer, logs)
}

func runTour(cmd *cobra.Command, args []string) error {
	if err := applyRunFlags(cmd); err != nil {
		return err
	}
	runner := newRunner(cmd)
	rep, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	logs.Get(logging.CategoryBoot).Debug("run complete",
		zap.String("run_id", rep.RunID),
		zap.Int("steps", len(rep.Steps)))
	return nil
}

func runStep(cmd *cobra.Command, args []string) error {
	if err := applyRunFlags(cmd); err != nil {
		return err
	}
	if _, err := newRunner(cmd).RunStep(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("step %s: %w", args[0], err)
	}
	return nil
}
