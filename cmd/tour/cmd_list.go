package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"collectiontour/internal/tour"
)

// newListCmd prints the step catalogue
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the steps of the tour",
		Args:  cobra.NoArgs,
		RunE:  listSteps,
	}
}

// newExplainCmd renders a step's notes
func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [id|slug]",
		Short: "Explain what a step demonstrates",
		Args:  cobra.ExactArgs(1),
		RunE:  explainStep,
	}
}

func listSteps(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSLUG\tTITLE")
	for _, s := range tour.Steps() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Slug, s.Title)
	}
	return w.Flush()
}

func explainStep(cmd *cobra.Command, args []string) error {
	s, err := tour.Lookup(args[0])
	if err != nil {
		return err
	}
	out, err := renderer.Markdown(s.Notes)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
