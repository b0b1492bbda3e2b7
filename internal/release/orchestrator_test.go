package release

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasekit/cli/internal/config"
	oerrors "github.com/releasekit/cli/internal/errors"
	"github.com/releasekit/cli/internal/forge"
	"github.com/releasekit/cli/internal/semver"
)

// fakeForge is a scripted in-memory forge client.
type fakeForge struct {
	tags     []string
	prs      []forge.PullRequest
	releases map[string]forge.Release

	created []forge.Release

	listTagsErr error
	listPRsErr  error
	createErr   error
}

func (f *fakeForge) ListAssociatedPullRequests(_ context.Context, _ string) ([]forge.PullRequest, error) {
	return f.prs, f.listPRsErr
}

func (f *fakeForge) ListTags(_ context.Context) ([]forge.Tag, error) {
	if f.listTagsErr != nil {
		return nil, f.listTagsErr
	}
	tags := make([]forge.Tag, len(f.tags))
	for i, name := range f.tags {
		tags[i] = forge.Tag{Name: name}
	}
	return tags, nil
}

func (f *fakeForge) GetReleaseByTag(_ context.Context, tag string) (forge.Release, error) {
	rel, ok := f.releases[tag]
	if !ok {
		return forge.Release{}, fmt.Errorf("release for tag %q: %w", tag, oerrors.ErrNotFound)
	}
	return rel, nil
}

func (f *fakeForge) CreateRelease(_ context.Context, tag string, prerelease bool) (forge.Release, error) {
	if f.createErr != nil {
		return forge.Release{}, f.createErr
	}
	rel := forge.Release{TagName: tag, Prerelease: prerelease, Body: "notes for " + tag}
	f.created = append(f.created, rel)
	return rel, nil
}

func baseConfig(mode config.ReleaseMode, bump config.BumpPolicy) config.Config {
	return config.Config{
		Token:     "token",
		Owner:     "acme",
		Repo:      "widget",
		CommitSHA: "deadbeef",
		Mode:      mode,
		Bump:      bump,
	}
}

func TestRunReleaseFromTagHistory(t *testing.T) {
	f := &fakeForge{tags: []string{"1.0.0", "1.1.0", "1.1.0-pre.0"}}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpMajor), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, out.ReleaseCreated)
	assert.Equal(t, "2.0.0", out.TagName)
	assert.False(t, out.Prerelease)
	assert.Equal(t, "2.0.0", out.PublishVersion)
	assert.Equal(t, TypeRelease, out.ReleaseType)
	assert.Equal(t, "notes for 2.0.0", out.Body)

	require.Len(t, f.created, 1)
	assert.Equal(t, "2.0.0", f.created[0].TagName)
	assert.False(t, f.created[0].Prerelease)
}

func TestRunPrereleaseOpensNewLine(t *testing.T) {
	f := &fakeForge{tags: []string{"1.2.3"}}
	o := NewOrchestrator(baseConfig(config.ModePrerelease, config.BumpPatch), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, out.ReleaseCreated)
	assert.Equal(t, "1.2.4-pre", out.TagName)
	assert.True(t, out.Prerelease)
	assert.Equal(t, "1.2.4-SNAPSHOT", out.PublishVersion)
	assert.Equal(t, TypeBeta, out.ReleaseType)

	require.Len(t, f.created, 1)
	assert.True(t, f.created[0].Prerelease)
}

func TestRunPrereleaseAdvancesCurrentLine(t *testing.T) {
	f := &fakeForge{tags: []string{"1.0.0", "2.0.0-pre"}}
	o := NewOrchestrator(baseConfig(config.ModePrerelease, config.BumpMajor), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-pre.1", out.TagName)
}

func TestRunPRLabelPolicy(t *testing.T) {
	t.Run("single label drives the bump", func(t *testing.T) {
		f := &fakeForge{
			tags: []string{"1.2.0"},
			prs: []forge.PullRequest{{
				Number: 41,
				Labels: []forge.Label{{Name: "docs"}, {Name: "release:minor"}},
			}},
		}
		o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPRLabel), f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.True(t, out.ReleaseCreated)
		assert.Equal(t, "1.3.0", out.TagName)
	})

	t.Run("ambiguous labels suppress the release without failing", func(t *testing.T) {
		f := &fakeForge{
			tags: []string{"1.2.0"},
			prs: []forge.PullRequest{{
				Number: 41,
				Labels: []forge.Label{{Name: "release:minor"}, {Name: "release:patch"}},
			}},
		}
		o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPRLabel), f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.NotEmpty(t, out.Reason)
		assert.Empty(t, f.created)
	})

	t.Run("no associated pull request is a clean no-op", func(t *testing.T) {
		f := &fakeForge{tags: []string{"1.2.0"}}
		o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPRLabel), f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Empty(t, f.created)
	})
}

func TestRunNoReleasePolicy(t *testing.T) {
	f := &fakeForge{tags: []string{"1.2.0"}}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpNoRelease), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, out.ReleaseCreated)
	assert.Empty(t, f.created)
}

func TestRunNoHistoryIsFatal(t *testing.T) {
	f := &fakeForge{}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPatch), f)

	_, err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNoHistory)
	assert.Empty(t, f.created)
}

func TestRunMalformedHistoryTagIsFatal(t *testing.T) {
	f := &fakeForge{tags: []string{"1.0.0", "v2-latest"}}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPatch), f)

	_, err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, semver.ErrInvalidTagFormat)
}

func TestRunTransportFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeForge{listTagsErr: boom}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPatch), f)

	_, err := o.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRunIdempotencyGuard(t *testing.T) {
	f := &fakeForge{
		tags: []string{"1.2.3"},
		releases: map[string]forge.Release{
			"1.2.4": {TagName: "1.2.4"},
		},
	}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpPatch), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, out.ReleaseCreated)
	assert.Contains(t, out.Reason, "already exists")
	assert.Empty(t, f.created)
}

func TestPromoteExplicitTarget(t *testing.T) {
	cfg := baseConfig(config.ModePromote, config.BumpPRLabel)
	cfg.PromoteFrom = "2.0.0-pre.1"
	f := &fakeForge{
		releases: map[string]forge.Release{
			"2.0.0-pre.1": {TagName: "2.0.0-pre.1", Prerelease: true},
		},
	}
	o := NewOrchestrator(cfg, f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, out.ReleaseCreated)
	assert.Equal(t, "2.0.0", out.TagName)
	assert.False(t, out.Prerelease)
	assert.Equal(t, TypeRelease, out.ReleaseType)

	// Promotion ignores the configured bump policy: no PR lookup happened.
	require.Len(t, f.created, 1)
	assert.False(t, f.created[0].Prerelease)
}

func TestPromoteLatestTarget(t *testing.T) {
	f := &fakeForge{
		tags: []string{"1.0.0", "2.0.0-pre.1", "1.9.9"},
		releases: map[string]forge.Release{
			"2.0.0-pre.1": {TagName: "2.0.0-pre.1", Prerelease: true},
		},
	}
	o := NewOrchestrator(baseConfig(config.ModePromote, config.BumpPRLabel), f)

	out, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", out.TagName)
	assert.True(t, out.ReleaseCreated)
}

func TestPromoteSkips(t *testing.T) {
	t.Run("latest version is not a prerelease", func(t *testing.T) {
		f := &fakeForge{tags: []string{"1.0.0", "2.0.0"}}
		o := NewOrchestrator(baseConfig(config.ModePromote, config.BumpPRLabel), f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Contains(t, out.Reason, "not a prerelease")
	})

	t.Run("no release object for the target tag", func(t *testing.T) {
		cfg := baseConfig(config.ModePromote, config.BumpPRLabel)
		cfg.PromoteFrom = "2.0.0-pre"
		o := NewOrchestrator(cfg, &fakeForge{})

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Contains(t, out.Reason, "no release exists")
	})

	t.Run("target release is a draft", func(t *testing.T) {
		cfg := baseConfig(config.ModePromote, config.BumpPRLabel)
		cfg.PromoteFrom = "2.0.0-pre"
		f := &fakeForge{releases: map[string]forge.Release{
			"2.0.0-pre": {TagName: "2.0.0-pre", Prerelease: true, Draft: true},
		}}
		o := NewOrchestrator(cfg, f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Contains(t, out.Reason, "draft")
	})

	t.Run("target release is not flagged prerelease", func(t *testing.T) {
		cfg := baseConfig(config.ModePromote, config.BumpPRLabel)
		cfg.PromoteFrom = "2.0.0-pre"
		f := &fakeForge{releases: map[string]forge.Release{
			"2.0.0-pre": {TagName: "2.0.0-pre", Prerelease: false},
		}}
		o := NewOrchestrator(cfg, f)

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Contains(t, out.Reason, "not a prerelease")
	})

	t.Run("empty history", func(t *testing.T) {
		o := NewOrchestrator(baseConfig(config.ModePromote, config.BumpPRLabel), &fakeForge{})

		out, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, out.ReleaseCreated)
		assert.Contains(t, out.Reason, "no releases found")
	})
}

func TestPromoteMalformedTargetIsFatal(t *testing.T) {
	cfg := baseConfig(config.ModePromote, config.BumpPRLabel)
	cfg.PromoteFrom = "2.0.0-beta.1"
	o := NewOrchestrator(cfg, &fakeForge{})

	_, err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
}

func TestPlanStopsBeforeCreation(t *testing.T) {
	f := &fakeForge{tags: []string{"1.2.3"}}
	o := NewOrchestrator(baseConfig(config.ModeRelease, config.BumpMinor), f)

	out, err := o.Plan(context.Background())
	require.NoError(t, err)

	assert.False(t, out.ReleaseCreated)
	assert.Equal(t, "1.3.0", out.TagName)
	assert.Equal(t, "1.3.0", out.PublishVersion)
	assert.Equal(t, TypeRelease, out.ReleaseType)
	assert.Empty(t, f.created)
}

func TestStepOutputs(t *testing.T) {
	out := Outputs{
		ReleaseCreated: true,
		TagName:        "1.3.0-pre",
		Prerelease:     true,
		Body:           "notes",
		PublishVersion: "1.3.0-SNAPSHOT",
		ReleaseType:    TypeBeta,
	}

	steps := out.StepOutputs()
	require.Len(t, steps, 6)
	got := map[string]string{}
	for _, s := range steps {
		got[s.Key] = s.Value
	}
	assert.Equal(t, map[string]string{
		"release_created": "true",
		"tag_name":        "1.3.0-pre",
		"prerelease":      "true",
		"body":            "notes",
		"publish_version": "1.3.0-SNAPSHOT",
		"release_type":    "beta",
	}, got)
}
