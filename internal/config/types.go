// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/editorconfig/pkg/editorconfig"
	"github.com/invowk/editorconfig/pkg/platform"
)

const (
	// FormatProperties prints key=value lines.
	FormatProperties OutputFormat = "properties"
	// FormatJSON prints a JSON object.
	FormatJSON OutputFormat = "json"
	// FormatYAML prints a YAML mapping.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML prints a TOML document.
	FormatTOML OutputFormat = "toml"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidConfFilename is returned when a configuration file name is empty
	// or contains a path separator.
	ErrInvalidConfFilename = errors.New("invalid configuration file name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how resolved properties are printed.
	OutputFormat string

	// ConfFilename is the name of the editorconfig file looked up in each directory.
	ConfFilename string

	// Config is the CLI configuration.
	Config struct {
		// ConfFilename is the configuration file name (default ".editorconfig").
		ConfFilename ConfFilename `json:"conf_filename" mapstructure:"conf_filename"`
		// Format is the output format.
		Format OutputFormat `json:"format" mapstructure:"format"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ExpandGlobs treats target arguments as glob patterns.
		ExpandGlobs bool `json:"expand_globs" mapstructure:"expand_globs"`
		// Source is the config file that was read, or SourceDefaults. It is
		// set by the Provider, never by the file itself.
		Source string `json:"-" mapstructure:"-"`
	}

	// InvalidConfigError collects the field errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// OutputFormats lists the supported output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatProperties, FormatJSON, FormatYAML, FormatTOML}
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// Validate returns an error wrapping ErrInvalidOutputFormat for unknown formats.
func (f OutputFormat) Validate() error {
	switch f {
	case FormatProperties, FormatJSON, FormatYAML, FormatTOML:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: properties, json, yaml, toml)", ErrInvalidOutputFormat, string(f))
	}
}

// String returns the string representation of the ConfFilename.
func (n ConfFilename) String() string { return string(n) }

// Validate returns an error wrapping ErrInvalidConfFilename when the name is
// blank, is a path rather than a file name, or cannot exist on every platform.
func (n ConfFilename) Validate() error {
	s := string(n)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: must be non-empty", ErrInvalidConfFilename)
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%w: %q must not contain a path separator", ErrInvalidConfFilename, s)
	}
	if s == "." || s == ".." {
		return fmt.Errorf("%w: %q names a directory", ErrInvalidConfFilename, s)
	}
	if platform.IsReservedFileName(s) {
		return fmt.Errorf("%w: %q is a reserved device name on Windows", ErrInvalidConfFilename, s)
	}
	return nil
}

// Validate checks every field of the Config.
func (c *Config) Validate() error {
	var errs []error
	if err := c.ConfFilename.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the configuration used when no file or override is present.
func DefaultConfig() *Config {
	return &Config{
		ConfFilename: ConfFilename(editorconfig.DefaultConfFileName),
		Format:       FormatProperties,
		Verbose:      false,
		ExpandGlobs:  false,
	}
}
