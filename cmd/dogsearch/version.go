package main

import (
	"fmt"

	"github.com/justinpbarnett/dogsearch/internal/ui/panels"
	"github.com/justinpbarnett/dogsearch/internal/update"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dogsearch version %s\n", panels.Version)

			if panels.Version == "dev" {
				fmt.Fprintln(out, "Development build, update check skipped.")
				return nil
			}

			rel, err := update.NewChecker().Check(cmd.Context(), panels.Version)
			if err != nil {
				fmt.Fprintf(out, "Update check failed: %v\n", err)
				return nil
			}
			if rel != nil {
				fmt.Fprintln(out, rel.Notice(panels.Version))
			} else {
				fmt.Fprintln(out, "You are up to date.")
			}
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest GitHub release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, err := update.NewChecker().Apply(cmd.Context(), panels.Version)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated to dogsearch %s\n", rel.Version)
			return nil
		},
	}
}
