// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/invowk/editorconfig/internal/issue"
)

// SourceDefaults is the Config.Source of a configuration built from defaults
// and environment variables only.
const SourceDefaults = "defaults"

// LoadOptions selects where the CLI configuration is read from.
type LoadOptions struct {
	// ConfigFilePath names a CUE file to read instead of the default
	// location (the --config flag).
	ConfigFilePath string
	// ConfigDirPath replaces the platform config directory.
	ConfigDirPath string
}

// Validate rejects a ConfigFilePath that is not a .cue file.
func (o LoadOptions) Validate() error {
	if o.ConfigFilePath == "" || filepath.Ext(o.ConfigFilePath) == "."+ConfigFileExt {
		return nil
	}
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(o.ConfigFilePath).
		WithSuggestion("--config takes the CLI settings file (config." + ConfigFileExt + "), not an .editorconfig").
		WithSuggestion("Use --conf-filename to change the name of the files resolved per directory").
		Wrap(fmt.Errorf("%w: not a .%s file", ErrInvalidConfig, ConfigFileExt)).
		BuildError()
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type cueProvider struct{}

// NewProvider returns a Provider reading the CUE config file, EDITORCONFIG_*
// environment variables and defaults, in decreasing precedence.
func NewProvider() Provider {
	return cueProvider{}
}

// Load validates opts, reads the configuration, and records in Source which
// file it came from.
func (cueProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	cfg.Source = path
	if path == "" {
		cfg.Source = SourceDefaults
	}
	return cfg, nil
}
