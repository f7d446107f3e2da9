package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"collectiontour/internal/logging"
	"collectiontour/internal/wordfreq"
)

var topN int

// newWordFreqCmd counts words of arbitrary input
func newWordFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordfreq [text...]",
		Short: "Count whitespace-separated words",
		Long: `Counts words split on whitespace; punctuation stays part of the word.

With no arguments the configured sentence is counted. Each argument is
counted on its own and the counts are merged; "-" reads stdin.`,
		Example: `  tour wordfreq
  tour wordfreq "a b a"
  cat notes.txt | tour wordfreq - --top 10`,
		RunE: runWordFreq,
	}
	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Only show the N most frequent words (0 = all)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml")
	return cmd
}

func runWordFreq(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("format") {
		cfg.Tour.Format = format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if len(args) == 0 {
		args = []string{cfg.Tour.WordFreqText}
	}

	c := wordfreq.NewCounter()
	for _, arg := range args {
		part := wordfreq.NewCounter()
		if arg == "-" {
			if _, err := part.ReadFrom(cmd.InOrStdin()); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		} else {
			part.AddText(arg)
		}
		c.Merge(part)
	}

	top := c.Top(topN)
	logs.Get(logging.CategoryWordFreq).Debug("counted",
		zap.Int("total", c.Total()),
		zap.Int("distinct", c.Distinct()),
		zap.Int("shown", len(top)))

	out := cmd.OutOrStdout()
	switch cfg.Tour.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(top)
	case "yaml":
		data, err := yaml.Marshal(top)
		if err != nil {
			return fmt.Errorf("failed to marshal counts: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, e := range top {
			fmt.Fprintf(w, "%s\t%d\n", e.Word, e.Count)
		}
		return w.Flush()
	}
}
