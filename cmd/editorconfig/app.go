// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/editorconfig/internal/config"

	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra handler
	// receives an App and reads configuration, files, and streams through it.
	App struct {
		Config ConfigProvider
		fs     afero.Fs
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Fs     afero.Fs
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads the CLI configuration.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App, filling unset dependencies with defaults.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	return &App{
		Config: deps.Config,
		fs:     deps.Fs,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}
