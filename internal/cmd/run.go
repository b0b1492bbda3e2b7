package cmd

import (
	"github.com/spf13/cobra"

	"github.com/releasekit/cli/internal/forge"
	"github.com/releasekit/cli/internal/output"
	"github.com/releasekit/cli/internal/release"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	flags := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the next version and create the release",
		Long: `Run executes the configured release mode end to end: resolve the bump
policy, find the latest version in the tag history, compute the next
version, create the release, and report step outputs.

Recoverable conditions (no associated pull request, no or ambiguous
release labels, nothing to promote) log a reason and exit zero with
release_created=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(cmd, flags, true)
		},
	}
	flags.register(cmd)
	return cmd
}

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	flags := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the next version without creating a release",
		Long: `Plan runs the same resolution pipeline as run but stops short of the
release-creation call, printing the outputs run would produce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(cmd, flags, false)
		},
	}
	flags.register(cmd)
	return cmd
}

// runRelease is the shared run/plan pipeline.
func runRelease(cmd *cobra.Command, flags *inputFlags, create bool) error {
	ctx := cmd.Context()

	cfg, err := flags.loadConfig()
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}
	output.Debug("configuration resolved",
		"repo", cfg.Owner+"/"+cfg.Repo, "mode", cfg.Mode, "bump", cfg.Bump)

	client := forge.NewGitHub(ctx, cfg.Token, cfg.Owner, cfg.Repo)
	orch := release.NewOrchestrator(cfg, client)

	var out release.Outputs
	action := func() error {
		var runErr error
		if create {
			out, runErr = orch.Run(ctx)
		} else {
			out, runErr = orch.Plan(ctx)
		}
		return runErr
	}
	if err := output.RunWithSpinner(ctx, "Resolving release...", action); err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}

	if create {
		if err := output.WriteStepOutputs(out.StepOutputs()); err != nil {
			return NewExitError(err, ExitGeneralError)
		}
	} else {
		for _, s := range out.StepOutputs() {
			output.Println(s.Key + "=" + s.Value)
		}
	}

	switch {
	case out.ReleaseCreated:
		output.Println(output.FormatCheckmark(output.FormatReleaseLine(out.TagName, output.StatusCreated)))
	case out.TagName != "" && !create:
		output.Println(output.FormatReleaseLine(out.TagName, output.StatusPlanned))
	}
	return nil
}
