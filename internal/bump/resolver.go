// Package bump resolves the configured bump policy into a concrete bump
// magnitude for the next version.
package bump

import (
	"context"
	"fmt"

	"github.com/releasekit/cli/internal/config"
	oerrors "github.com/releasekit/cli/internal/errors"
	"github.com/releasekit/cli/internal/forge"
	"github.com/releasekit/cli/internal/output"
	"github.com/releasekit/cli/internal/semver"
)

// Release labels recognized on pull requests. Any other label is ignored.
var labelBumps = map[string]semver.Bump{
	"release:major": semver.BumpMajor,
	"release:minor": semver.BumpMinor,
	"release:patch": semver.BumpPatch,
}

// PullRequestLister is the collaborator consulted for the prlabel policy.
type PullRequestLister interface {
	ListAssociatedPullRequests(ctx context.Context, sha string) ([]forge.PullRequest, error)
}

// Resolution is the outcome of resolving a bump policy. When Act is false no
// release should be produced and Reason says why; this is a recoverable
// condition, not an error.
type Resolution struct {
	Bump   semver.Bump
	Act    bool
	Reason string
}

// Resolver turns a bump policy plus run-time context into a Resolution.
type Resolver struct {
	prs PullRequestLister
}

// NewResolver creates a Resolver consulting the given collaborator for the
// prlabel policy.
func NewResolver(prs PullRequestLister) *Resolver {
	return &Resolver{prs: prs}
}

// Resolve maps the policy to a bump magnitude. Fixed policies resolve
// directly; prlabel consults the pull request associated with the commit.
func (r *Resolver) Resolve(ctx context.Context, policy config.BumpPolicy, sha string) (Resolution, error) {
	switch policy {
	case config.BumpNoRelease:
		return Resolution{Reason: "version_bump is norelease"}, nil
	case config.BumpMajor:
		return Resolution{Bump: semver.BumpMajor, Act: true}, nil
	case config.BumpMinor:
		return Resolution{Bump: semver.BumpMinor, Act: true}, nil
	case config.BumpPatch:
		return Resolution{Bump: semver.BumpPatch, Act: true}, nil
	case config.BumpPRLabel:
		return r.resolveFromLabels(ctx, sha)
	default:
		return Resolution{}, fmt.Errorf("%w: unrecognized bump policy %q", oerrors.ErrConfig, policy)
	}
}

// resolveFromLabels inspects the first pull request associated with the
// commit and selects the bump named by its single release:* label. Zero
// associated pull requests, zero matching labels, or more than one matching
// label all suppress the release without failing the run.
func (r *Resolver) resolveFromLabels(ctx context.Context, sha string) (Resolution, error) {
	prs, err := r.prs.ListAssociatedPullRequests(ctx, sha)
	if err != nil {
		return Resolution{}, err
	}
	if len(prs) == 0 {
		return Resolution{Reason: fmt.Sprintf("no pull requests associated with commit %s", sha)}, nil
	}
	if len(prs) > 1 {
		// The tie-break is API order; make the dependence observable.
		nums := make([]int, len(prs))
		for i, pr := range prs {
			nums[i] = pr.Number
		}
		output.Warn("multiple pull requests associated with commit; using the first",
			"commit", sha, "pull_requests", nums)
	}

	pr := prs[0]
	var matched []semver.Bump
	for _, label := range pr.Labels {
		if b, ok := labelBumps[label.Name]; ok {
			matched = append(matched, b)
		}
	}

	switch len(matched) {
	case 0:
		return Resolution{Reason: fmt.Sprintf("no release label on pull request #%d", pr.Number)}, nil
	case 1:
		return Resolution{Bump: matched[0], Act: true}, nil
	default:
		return Resolution{Reason: fmt.Sprintf("multiple release labels on pull request #%d", pr.Number)}, nil
	}
}
