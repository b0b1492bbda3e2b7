// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"strings"

	oerrors "github.com/releasekit/cli/internal/errors"
)

// BumpPolicy selects how the bump magnitude for the next version is
// determined.
type BumpPolicy string

// Recognized bump policies.
const (
	// BumpPRLabel derives the magnitude from the release:* label on the
	// pull request associated with the commit under release.
	BumpPRLabel BumpPolicy = "prlabel"

	// BumpNoRelease suppresses the release without failing the run.
	BumpNoRelease BumpPolicy = "norelease"

	BumpMajor BumpPolicy = "major"
	BumpMinor BumpPolicy = "minor"
	BumpPatch BumpPolicy = "patch"
)

// ParseBumpPolicy parses a version_bump value. Unrecognized values are a
// configuration error; there is no silent fallback.
func ParseBumpPolicy(s string) (BumpPolicy, error) {
	switch BumpPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case BumpPRLabel:
		return BumpPRLabel, nil
	case BumpNoRelease:
		return BumpNoRelease, nil
	case BumpMajor:
		return BumpMajor, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpPatch:
		return BumpPatch, nil
	default:
		return "", fmt.Errorf("%w: unrecognized version_bump %q (valid: prlabel, norelease, major, minor, patch)", oerrors.ErrConfig, s)
	}
}

// ReleaseMode selects what kind of release the run produces.
type ReleaseMode string

// Recognized release modes.
const (
	ModePrerelease ReleaseMode = "prerelease"
	ModeRelease    ReleaseMode = "release"
	ModePromote    ReleaseMode = "promote"
)

// ParseReleaseMode parses a release_mode value. Unrecognized values are a
// configuration error; there is no silent fallback.
func ParseReleaseMode(s string) (ReleaseMode, error) {
	switch ReleaseMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePrerelease:
		return ModePrerelease, nil
	case ModeRelease:
		return ModeRelease, nil
	case ModePromote:
		return ModePromote, nil
	default:
		return "", fmt.Errorf("%w: unrecognized release_mode %q (valid: prerelease, release, promote)", oerrors.ErrConfig, s)
	}
}

// Config is the immutable run configuration. It is constructed once by the
// loader and passed by value into the orchestrator.
type Config struct {
	// Token is the API credential (required).
	Token string

	// Owner and Repo identify the repository. They default to the invoking
	// repository (GITHUB_REPOSITORY).
	Owner string
	Repo  string

	// CommitSHA is the commit under release (GITHUB_SHA). Required only for
	// the prlabel bump policy on the prerelease/release modes.
	CommitSHA string

	// Mode is the release mode (required).
	Mode ReleaseMode

	// Bump is the bump policy. Defaults to prlabel.
	Bump BumpPolicy

	// PromoteFrom is the explicit prerelease tag to promote. Valid only
	// with the promote mode; empty means "latest".
	PromoteFrom string
}

// Validate checks cross-field constraints. Enum fields are assumed to have
// been produced by the Parse functions.
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: github_token is required", oerrors.ErrConfig)
	}
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("%w: repository owner and name are required (set repo_owner/repo_name or GITHUB_REPOSITORY)", oerrors.ErrConfig)
	}
	if c.Mode == "" {
		return fmt.Errorf("%w: release_mode is required", oerrors.ErrConfig)
	}
	if c.PromoteFrom != "" && c.Mode != ModePromote {
		return fmt.Errorf("%w: promote_from is only valid with release_mode=promote (got %q)", oerrors.ErrConfig, c.Mode)
	}
	if c.Bump == BumpPRLabel && c.Mode != ModePromote && c.CommitSHA == "" {
		return fmt.Errorf("%w: commit SHA is required for version_bump=prlabel (set GITHUB_SHA)", oerrors.ErrConfig)
	}
	return nil
}
