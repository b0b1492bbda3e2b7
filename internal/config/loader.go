package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/releasekit/cli/internal/errors"
)

// Environment variable prefix for local (non-pipeline) runs.
const envPrefix = "RELKIT"

// Options carries flag-level overrides into the loader. Empty fields are
// unset; flags take precedence over environment variables, which take
// precedence over the optional config file.
type Options struct {
	// ConfigFile is an optional YAML config file for local runs.
	ConfigFile string

	Token       string
	Owner       string
	Repo        string
	CommitSHA   string
	Mode        string
	Bump        string
	PromoteFrom string
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with the pipeline's
// environment bindings in place. Each option binds both the step-input form
// (INPUT_*) and the RELKIT_* form for local runs.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("github_token", "INPUT_GITHUB_TOKEN", "RELKIT_GITHUB_TOKEN", "GITHUB_TOKEN")
	_ = v.BindEnv("repo_owner", "INPUT_REPO_OWNER", "RELKIT_REPO_OWNER")
	_ = v.BindEnv("repo_name", "INPUT_REPO_NAME", "RELKIT_REPO_NAME")
	_ = v.BindEnv("version_bump", "INPUT_VERSION_BUMP", "RELKIT_VERSION_BUMP")
	_ = v.BindEnv("release_mode", "INPUT_RELEASE_MODE", "RELKIT_RELEASE_MODE")
	_ = v.BindEnv("promote_from", "INPUT_PROMOTE_FROM", "RELKIT_PROMOTE_FROM")
	_ = v.BindEnv("commit_sha", "GITHUB_SHA")
	_ = v.BindEnv("github_repository", "GITHUB_REPOSITORY")

	v.SetDefault("version_bump", string(BumpPRLabel))

	return &Loader{v: v}
}

// Load builds the immutable run configuration. Enum fields are parsed
// strictly and cross-field constraints validated; any violation is a fatal
// configuration error surfaced before any network call.
func (l *Loader) Load(opts Options) (Config, error) {
	if opts.ConfigFile != "" {
		l.v.SetConfigFile(opts.ConfigFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Token:       override(opts.Token, l.v.GetString("github_token")),
		Owner:       override(opts.Owner, l.v.GetString("repo_owner")),
		Repo:        override(opts.Repo, l.v.GetString("repo_name")),
		CommitSHA:   override(opts.CommitSHA, l.v.GetString("commit_sha")),
		PromoteFrom: override(opts.PromoteFrom, l.v.GetString("promote_from")),
	}

	// Owner/name default to the invoking repository ("owner/name").
	if cfg.Owner == "" || cfg.Repo == "" {
		if owner, repo, ok := strings.Cut(l.v.GetString("github_repository"), "/"); ok {
			if cfg.Owner == "" {
				cfg.Owner = owner
			}
			if cfg.Repo == "" {
				cfg.Repo = repo
			}
		}
	}

	rawMode := override(opts.Mode, l.v.GetString("release_mode"))
	if rawMode == "" {
		return Config{}, fmt.Errorf("%w: release_mode is required", oerrors.ErrConfig)
	}
	mode, err := ParseReleaseMode(rawMode)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = mode

	bump, err := ParseBumpPolicy(override(opts.Bump, l.v.GetString("version_bump")))
	if err != nil {
		return Config{}, err
	}
	cfg.Bump = bump

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// override returns the flag value when set, else the resolved value.
func override(flag, resolved string) string {
	if flag != "" {
		return flag
	}
	return resolved
}
