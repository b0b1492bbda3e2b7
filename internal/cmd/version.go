package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releasekit/cli/internal/output"
	"github.com/releasekit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			output.Println(fmt.Sprintf("relkit version %s", info.Version))
			output.Println(fmt.Sprintf("  Commit: %s", info.GitCommit))
			output.Println(fmt.Sprintf("  Built:  %s", info.BuildDate))
			output.Println(fmt.Sprintf("  Go:     %s", info.GoVersion))
			return nil
		},
	}
}
