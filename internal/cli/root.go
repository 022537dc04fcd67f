// Package cli provides the command-line interface for graphlens.
package cli

import (
	"graphlens/internal/config"
	"graphlens/ui/tui"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version = "0.1.0"
)

var (
	cfgFile    string
	sourceFlag string
	cfg        config.Settings
)

// NewRootCmd creates and returns the root command. Running it with no
// subcommand starts the interactive TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "graphlens",
		Short: "graphlens - interactive network graph explorer",
		Long: `graphlens fetches a graph from Neo4j or a relational database,
normalizes it into a uniform node/edge element model, and derives
per-label visual styles for rendering.

Settings come from graphlens.yaml, GRAPHLENS_* environment variables,
or the interactive forms.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			if sourceFlag != "" {
				cfg.Source = sourceFlag
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Start(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./graphlens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "data source kind: graph or relational")

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newMCPCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
