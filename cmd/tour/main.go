package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collectiontour/internal/config"
	"collectiontour/internal/logging"
	"collectiontour/internal/render"
)

var (
	// Global flags
	verbose    bool
	plain      bool
	configPath string

	// Set up by PersistentPreRunE
	cfg      *config.Config
	logs     *logging.Manager
	renderer *render.Renderer
)

// newRootCmd builds the command tree. Flags are bound afresh on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tour",
		Short: "A guided tour of sequences, text and maps",
		Long: `tour walks through a fixed sequence of collection demonstrations:
growable sequences, a tagged union, UTF-8 text, maps and a word count.

Each step prints what it observed. Run without arguments to run every step.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logs != nil {
				_ = logs.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: runTour,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging for every category")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and markdown styling")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	addRunFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newStepCmd(),
		newListCmd(),
		newExplainCmd(),
		newWordFreqCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logging.Level = "debug"
		loaded.Logging.DebugMode = true
	}
	if plain {
		loaded.UX.Plain = true
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	m, err := logging.New(loaded.Logging)
	if err != nil {
		return err
	}

	r, err := render.New(render.Options{Plain: loaded.UX.Plain, WordWrap: loaded.UX.WordWrap})
	if err != nil {
		return err
	}

	cfg, logs, renderer = loaded, m, r
	logs.Get(logging.CategoryRender).Debug("renderer ready",
		zap.Bool("plain", renderer.Plain()),
		zap.Int("word_wrap", cfg.UX.WordWrap))
	logs.Get(logging.CategoryBoot).Debug("configured",
		zap.String("command", cmd.CommandPath()),
		zap.String("config", configPath),
		zap.String("format", cfg.Tour.Format))
	return nil
}

// failureLine formats a top-level error, styled once setup has built the
// renderer.
func failureLine(err error) string {
	if renderer == nil {
		return "error: " + err.Error()
	}
	return renderer.Failure(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, failureLine(err))
		os.Exit(1)
	}
}
