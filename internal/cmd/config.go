package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releasekit/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(newConfigVetCmd())
	return cmd
}

// newConfigVetCmd creates the config vet command.
func newConfigVetCmd() *cobra.Command {
	flags := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate the resolved configuration",
		Long: `Vet loads the configuration from flags, environment, and the optional
config file, validates it, and prints the resolved values. No network
call is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return NewExitError(err, ExitCodeFromError(err))
			}

			output.Println(fmt.Sprintf("repository:   %s/%s", cfg.Owner, cfg.Repo))
			output.Println(fmt.Sprintf("release_mode: %s", cfg.Mode))
			output.Println(fmt.Sprintf("version_bump: %s", cfg.Bump))
			if cfg.PromoteFrom != "" {
				output.Println(fmt.Sprintf("promote_from: %s", cfg.PromoteFrom))
			}
			if cfg.CommitSHA != "" {
				output.Println(fmt.Sprintf("commit:       %s", cfg.CommitSHA))
			}
			output.Println(output.FormatCheckmark("configuration is valid"))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
