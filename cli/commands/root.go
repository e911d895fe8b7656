package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"portscribe/internal/config"
	"portscribe/internal/inventory"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf  *config.Config
	Ports inventory.Service
}

// RunFlags are the options for a full plan and apply run
type RunFlags struct {
	DryRun       bool
	Yes          bool
	Format       string
	WriteStartup bool
	NoPreflight  bool
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	flags := &RunFlags{}

	cmd := &cobra.Command{
		Use:   "portscribe",
		Short: "Labels switch ports with the hostname of the connected user",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), props, flags)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "plan and report without touching any device")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "apply without interactive review")
	cmd.Flags().StringVar(&flags.Format, "format", "csv", "report format: csv or xlsx")
	cmd.Flags().BoolVar(&flags.WriteStartup, "write-startup", false, "save running config to startup config after applying")
	cmd.Flags().BoolVar(&flags.NoPreflight, "no-preflight", false, "skip the reachability scan of configured switches")

	cmd.AddCommand(report(props))
	cmd.AddCommand(clear())
	cmd.AddCommand(version())

	return cmd
}
