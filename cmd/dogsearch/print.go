package main

import (
	"fmt"
	"io"

	"github.com/justinpbarnett/dogsearch/internal/highlight"
	"github.com/justinpbarnett/dogsearch/internal/search"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
	"github.com/spf13/cobra"
)

func newPrintCmd(o *options) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "print [query]",
		Short: "Print every item with the query highlighted",
		Long: `Load the items once and print one name per line. Matches of the query are
emphasized and the rest of each name is muted. With --filter only matching
names are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig(cmd)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg.Log.File)
			if err != nil {
				return err
			}
			defer closeLog()

			state, err := newState(cfg)
			if err != nil {
				return err
			}
			if err := state.Load(cmd.Context()); err != nil {
				return fmt.Errorf("loading items: %w", err)
			}
			if len(args) == 1 {
				state.SetQuery(args[0])
			}
			return printItems(cmd.OutOrStdout(), state, cfg.UI.Filtering(), plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print names without highlighting")
	return cmd
}

func printItems(w io.Writer, state *search.State, filter, plain bool) error {
	q := state.Query()
	for _, it := range state.Visible(filter) {
		line := it.Name
		if !plain {
			line = styles.RenderSegments(highlight.Segments(q, it.Name), false)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
