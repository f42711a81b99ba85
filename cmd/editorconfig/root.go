// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/editorconfig/internal/config"
	"github.com/invowk/editorconfig/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// rootFlags holds the raw flag values of the root command.
	rootFlags struct {
		confFilename string
		ecVersion    string
		format       string
		glob         bool
		verbose      bool
		configPath   string
	}

	// settings is the configuration after flags were applied over the
	// loaded config file and environment.
	settings struct {
		confFilename config.ConfFilename
		format       config.OutputFormat
		verbose      bool
		expandGlobs  bool
		source       string
		logger       *log.Logger
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:   "editorconfig [flags] FILE...",
		Short: "Print the EditorConfig properties that apply to files",
		Long: TitleStyle.Render("editorconfig") + SubtitleStyle.Render(" - resolve EditorConfig properties") + `

For each FILE, editorconfig reads the configuration files found in the
file's directory and every ancestor up to the nearest one declaring
root = true, and prints the properties that apply, closest file first.

` + SubtitleStyle.Render("Examples:") + `
  editorconfig src/main.go            Print key=value lines
  editorconfig --format json a.go b.c One JSON object per file
  editorconfig --glob 'src/**/*.go'   Resolve every matching file
  editorconfig find .                 Show the project's root configuration`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolvedSettings, err := app.loadSettings(cmd, flags)
			if err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, flags.verbose))
				return &ExitError{Code: ExitUsage, Err: err}
			}
			*s = *resolvedSettings
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+"no target files given")
				return &ExitError{Code: ExitUsage}
			}
			if flags.ecVersion != "" {
				s.logger.Debug("compatibility version requested", "version", flags.ecVersion)
			}
			return app.runResolve(cmd.Context(), s, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.confFilename, "conf-filename", "f", "", "configuration file name (default .editorconfig)")
	pf.StringVar(&flags.format, "format", "", "output format: properties, json, yaml, toml (default properties)")
	pf.BoolVar(&flags.verbose, "verbose", false, "trace the configuration cascade on stderr")
	pf.StringVar(&flags.configPath, "config", "", "CLI config file (default is $HOME/.config/editorconfig/config.cue)")

	rootCmd.Flags().StringVarP(&flags.ecVersion, "ec-version", "b", "", "EditorConfig version to emulate (accepted for compatibility)")
	rootCmd.Flags().BoolVar(&flags.glob, "glob", false, "treat FILE arguments as ** glob patterns")

	rootCmd.AddCommand(newFindCommand(app, s))
	rootCmd.AddCommand(newConfigCommand(app, s))

	return rootCmd
}

// loadSettings loads the CLI configuration and applies explicitly set flags
// over it.
func (a *App) loadSettings(cmd *cobra.Command, flags *rootFlags) (*settings, error) {
	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("conf-filename") {
		cfg.ConfFilename = config.ConfFilename(flags.confFilename)
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if changed("glob") {
		cfg.ExpandGlobs = flags.glob
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply command-line flags").
			WithSuggestion("Run 'editorconfig --help' for the accepted values").
			Wrap(err).
			BuildError()
	}

	flags.verbose = cfg.Verbose
	return &settings{
		confFilename: cfg.ConfFilename,
		format:       cfg.Format,
		verbose:      cfg.Verbose,
		expandGlobs:  cfg.ExpandGlobs,
		source:       cfg.Source,
		logger:       newLogger(a.stderr, cfg.Verbose),
	}, nil
}

// formatErrorForDisplay renders ActionableErrors with their suggestions and
// falls back to the plain message otherwise.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	err := fang.Execute(
		context.Background(),
		NewRootCommand(NewApp(Dependencies{})),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	return exitCode(err)
}

// Execute runs the CLI and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Main())
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
