package cmd

import (
	"github.com/spf13/cobra"

	"github.com/releasekit/cli/internal/config"
)

// inputFlags are the per-command overrides for the pipeline inputs. Empty
// values fall through to the environment (INPUT_*/GITHUB_*) and config file.
type inputFlags struct {
	token       string
	owner       string
	repo        string
	commit      string
	mode        string
	bump        string
	promoteFrom string
}

// register adds the input override flags to a command.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "API token (env: INPUT_GITHUB_TOKEN, GITHUB_TOKEN)")
	cmd.Flags().StringVar(&f.owner, "repo-owner", "", "Repository owner (env: INPUT_REPO_OWNER, default: invoking repository)")
	cmd.Flags().StringVar(&f.repo, "repo-name", "", "Repository name (env: INPUT_REPO_NAME, default: invoking repository)")
	cmd.Flags().StringVar(&f.commit, "commit", "", "Commit SHA under release (env: GITHUB_SHA)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Release mode: prerelease, release, promote (env: INPUT_RELEASE_MODE)")
	cmd.Flags().StringVar(&f.bump, "bump", "", "Bump policy: prlabel, norelease, major, minor, patch (env: INPUT_VERSION_BUMP)")
	cmd.Flags().StringVar(&f.promoteFrom, "promote-from", "", "Prerelease tag to promote (env: INPUT_PROMOTE_FROM)")
}

// loadConfig builds the run configuration from flags, environment, and the
// optional config file.
func (f *inputFlags) loadConfig() (config.Config, error) {
	return config.NewLoader().Load(config.Options{
		ConfigFile:  configFlag,
		Token:       f.token,
		Owner:       f.owner,
		Repo:        f.repo,
		CommitSHA:   f.commit,
		Mode:        f.mode,
		Bump:        f.bump,
		PromoteFrom: f.promoteFrom,
	})
}
