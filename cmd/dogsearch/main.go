package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/dogsearch/internal/config"
	"github.com/justinpbarnett/dogsearch/internal/search"
	"github.com/justinpbarnett/dogsearch/internal/source"
	"github.com/justinpbarnett/dogsearch/internal/ui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every command.
type options struct {
	configPath string
	sourceFile string
	filter     bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "dogsearch",
		Short: "Search a list of dog breeds as you type",
		Long: `dogsearch shows a list of dog breeds under a search bar. Every keystroke
highlights the part of each name that matches the query.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runTUI(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "config file (default ./dogsearch.yaml or ~/.config/dogsearch/config.yaml)")
	pf.StringVarP(&o.sourceFile, "source-file", "f", "", "load items from a YAML, JSON or TOML file")
	pf.BoolVar(&o.filter, "filter", false, "hide items that don't match the query")

	root.AddCommand(newPrintCmd(o), newVersionCmd(), newUpdateCmd())
	return root
}

// loadConfig reads the config file and applies command-line overrides.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.sourceFile != "" {
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Path = o.sourceFile
	}
	if cmd.Flags().Changed("filter") {
		v := o.filter
		cfg.UI.FilterResults = &v
	}
	return cfg, nil
}

// newState wires the configured source into a fresh search state.
func newState(cfg *config.Config) (*search.State, error) {
	src, err := source.FromConfig(cfg.Source)
	if err != nil {
		return nil, err
	}
	return search.New(src), nil
}

func (o *options) runTUI(cmd *cobra.Command) error {
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

	ctx := cmd.Context()
	p := tea.NewProgram(ui.NewApp(ctx, cfg, state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty since the terminal belongs to the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "dogsearch")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}
