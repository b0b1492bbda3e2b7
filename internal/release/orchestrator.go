// Package release sequences a release run: bump resolution, tag history,
// version transition, release creation, and output reporting.
package release

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/releasekit/cli/internal/bump"
	"github.com/releasekit/cli/internal/config"
	oerrors "github.com/releasekit/cli/internal/errors"
	"github.com/releasekit/cli/internal/forge"
	"github.com/releasekit/cli/internal/output"
	"github.com/releasekit/cli/internal/semver"
)

// Release type output values.
const (
	TypeBeta    = "beta"
	TypeRelease = "release"
)

// Outputs are the values reported to the surrounding pipeline after a run.
type Outputs struct {
	ReleaseCreated bool
	TagName        string
	Prerelease     bool
	Body           string
	PublishVersion string
	ReleaseType    string

	// Reason is set when no release was created (recoverable no-op).
	Reason string
}

// StepOutputs renders the outputs as pipeline step outputs.
func (o Outputs) StepOutputs() []output.StepOutput {
	return []output.StepOutput{
		{Key: "release_created", Value: strconv.FormatBool(o.ReleaseCreated)},
		{Key: "tag_name", Value: o.TagName},
		{Key: "prerelease", Value: strconv.FormatBool(o.Prerelease)},
		{Key: "body", Value: o.Body},
		{Key: "publish_version", Value: o.PublishVersion},
		{Key: "release_type", Value: o.ReleaseType},
	}
}

// Orchestrator runs the single-shot release state machine for one
// configured mode.
type Orchestrator struct {
	cfg      config.Config
	client   forge.Client
	resolver *bump.Resolver
}

// NewOrchestrator creates an orchestrator for the given configuration and
// collaborator.
func NewOrchestrator(cfg config.Config, client forge.Client) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		client:   client,
		resolver: bump.NewResolver(client),
	}
}

// Run executes the configured mode end to end, creating the release.
func (o *Orchestrator) Run(ctx context.Context) (Outputs, error) {
	return o.run(ctx, true)
}

// Plan executes the same resolution pipeline but stops short of the
// release-creation call.
func (o *Orchestrator) Plan(ctx context.Context) (Outputs, error) {
	return o.run(ctx, false)
}

func (o *Orchestrator) run(ctx context.Context, create bool) (Outputs, error) {
	switch o.cfg.Mode {
	case config.ModePrerelease, config.ModeRelease:
		return o.bumpRelease(ctx, create, o.cfg.Mode == config.ModePrerelease)
	case config.ModePromote:
		return o.promote(ctx, create)
	default:
		// Unreachable after config validation.
		return Outputs{}, fmt.Errorf("%w: unrecognized release mode %q", oerrors.ErrConfig, o.cfg.Mode)
	}
}

// bumpRelease is the prerelease/release path: resolve the bump, find the
// latest version in history, transition, create.
func (o *Orchestrator) bumpRelease(ctx context.Context, create, toPrerelease bool) (Outputs, error) {
	res, err := o.resolver.Resolve(ctx, o.cfg.Bump, o.cfg.CommitSHA)
	if err != nil {
		return Outputs{}, err
	}
	if !res.Act {
		return o.skip(res.Reason), nil
	}

	latest, err := o.latestVersion(ctx)
	if err != nil {
		return Outputs{}, err
	}

	next, err := semver.Next(latest, res.Bump, toPrerelease)
	if err != nil {
		return Outputs{}, err
	}
	output.Debug("computed next version",
		"latest", latest.TagString(), "bump", res.Bump.String(), "next", next.TagString())

	return o.finish(ctx, create, next)
}

// promote finalizes an existing prerelease in place without changing its
// (major, minor, patch). The configured bump policy is ignored; promotion is
// always the fixed patch-class finalizing transition.
func (o *Orchestrator) promote(ctx context.Context, create bool) (Outputs, error) {
	var target semver.Version
	if o.cfg.PromoteFrom != "" {
		v, err := semver.Parse(o.cfg.PromoteFrom)
		if err != nil {
			return Outputs{}, fmt.Errorf("%w: promote_from: %v", oerrors.ErrConfig, err)
		}
		target = v
	} else {
		v, err := o.latestVersion(ctx)
		if errors.Is(err, oerrors.ErrNoHistory) {
			return o.skip("no releases found to promote"), nil
		}
		if err != nil {
			return Outputs{}, err
		}
		target = v
	}

	if !target.IsPreRelease() {
		return o.skip(fmt.Sprintf("version %s is not a prerelease", target.TagString())), nil
	}

	rel, err := o.client.GetReleaseByTag(ctx, target.TagString())
	if errors.Is(err, oerrors.ErrNotFound) {
		return o.skip(fmt.Sprintf("no release exists for tag %s", target.TagString())), nil
	}
	if err != nil {
		return Outputs{}, err
	}
	if rel.Draft {
		return o.skip(fmt.Sprintf("release %s is a draft", target.TagString())), nil
	}
	if !rel.Prerelease {
		return o.skip(fmt.Sprintf("release %s is not a prerelease", target.TagString())), nil
	}

	next, err := semver.Next(target, semver.BumpPatch, false)
	if err != nil {
		return Outputs{}, err
	}
	output.Debug("promoting prerelease",
		"from", target.TagString(), "to", next.TagString())

	return o.finish(ctx, create, next)
}

// latestVersion lists all tags and returns the global maximum across every
// parsed version, prerelease or final. A tag that does not parse is fatal:
// history is assumed well-formed. An empty history is ErrNoHistory.
func (o *Orchestrator) latestVersion(ctx context.Context) (semver.Version, error) {
	tags, err := o.client.ListTags(ctx)
	if err != nil {
		return semver.Version{}, err
	}
	if len(tags) == 0 {
		return semver.Version{}, oerrors.ErrNoHistory
	}

	var latest semver.Version
	for i, tag := range tags {
		v, err := semver.Parse(tag.Name)
		if err != nil {
			return semver.Version{}, fmt.Errorf("tag history: %w", err)
		}
		if i == 0 || v.Compare(latest) > 0 {
			latest = v
		}
	}
	return latest, nil
}

// finish applies the idempotency guard and creates (or plans) the release
// for the computed version.
func (o *Orchestrator) finish(ctx context.Context, create bool, next semver.Version) (Outputs, error) {
	tag := next.TagString()

	// Check-before-create: re-running after a timed-out creation call must
	// not produce a duplicate or conflicting release.
	if _, err := o.client.GetReleaseByTag(ctx, tag); err == nil {
		return o.skip(fmt.Sprintf("release %s already exists", tag)), nil
	} else if !errors.Is(err, oerrors.ErrNotFound) {
		return Outputs{}, err
	}

	out := Outputs{
		TagName:        tag,
		Prerelease:     next.IsPreRelease(),
		PublishVersion: next.PublishString(),
		ReleaseType:    TypeRelease,
	}
	if next.IsPreRelease() {
		out.ReleaseType = TypeBeta
	}

	if !create {
		out.Reason = "dry run"
		return out, nil
	}

	rel, err := o.client.CreateRelease(ctx, tag, next.IsPreRelease())
	if err != nil {
		return Outputs{}, err
	}
	out.ReleaseCreated = true
	out.Body = rel.Body
	return out, nil
}

// skip reports a recoverable no-op: the run succeeds with no release.
func (o *Orchestrator) skip(reason string) Outputs {
	output.Info("no release created", "reason", reason)
	return Outputs{Reason: reason}
}
