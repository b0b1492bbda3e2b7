package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/releasekit/cli/internal/errors"
)

func TestParseBumpPolicy(t *testing.T) {
	t.Run("recognized values", func(t *testing.T) {
		for raw, want := range map[string]BumpPolicy{
			"prlabel":   BumpPRLabel,
			"norelease": BumpNoRelease,
			"major":     BumpMajor,
			"minor":     BumpMinor,
			"patch":     BumpPatch,
			"  Major ":  BumpMajor,
		} {
			got, err := ParseBumpPolicy(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("unrecognized value is a config error", func(t *testing.T) {
		_, err := ParseBumpPolicy("biggest")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrConfig)
	})
}

func TestParseReleaseMode(t *testing.T) {
	t.Run("recognized values", func(t *testing.T) {
		for raw, want := range map[string]ReleaseMode{
			"prerelease": ModePrerelease,
			"release":    ModeRelease,
			"promote":    ModePromote,
			"RELEASE":    ModeRelease,
		} {
			got, err := ParseReleaseMode(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("unrecognized value is a config error", func(t *testing.T) {
		_, err := ParseReleaseMode("ship-it")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrConfig)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Token:     "token",
		Owner:     "acme",
		Repo:      "widget",
		CommitSHA: "abc123",
		Mode:      ModeRelease,
		Bump:      BumpPRLabel,
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := valid
		cfg.Token = ""
		assert.ErrorIs(t, cfg.Validate(), oerrors.ErrConfig)
	})

	t.Run("missing repository", func(t *testing.T) {
		cfg := valid
		cfg.Owner = ""
		assert.ErrorIs(t, cfg.Validate(), oerrors.ErrConfig)
	})

	t.Run("promote_from without promote mode", func(t *testing.T) {
		cfg := valid
		cfg.PromoteFrom = "1.2.0-pre"
		assert.ErrorIs(t, cfg.Validate(), oerrors.ErrConfig)
	})

	t.Run("promote_from with promote mode", func(t *testing.T) {
		cfg := valid
		cfg.Mode = ModePromote
		cfg.PromoteFrom = "1.2.0-pre"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("prlabel without commit SHA", func(t *testing.T) {
		cfg := valid
		cfg.CommitSHA = ""
		assert.ErrorIs(t, cfg.Validate(), oerrors.ErrConfig)
	})

	t.Run("promote does not need a commit SHA", func(t *testing.T) {
		cfg := valid
		cfg.Mode = ModePromote
		cfg.CommitSHA = ""
		assert.NoError(t, cfg.Validate())
	})
}
