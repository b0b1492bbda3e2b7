package cmd

import (
	"github.com/spf13/cobra"

	"github.com/releasekit/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool
)

// NewRootCmd creates the root command for the relkit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "relkit",
		Short:         "Semantic release automation",
		Long: `relkit computes the next semantic version for a repository from its
tag history and a configured bump policy, and creates the corresponding
release. It is designed to run as a step in a delivery pipeline, reading
its inputs from the environment and reporting step outputs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetupLogging(verboseFlag)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file for local runs (env: RELKIT_*)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
