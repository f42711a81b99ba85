// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/invowk/editorconfig/internal/issue"
	"github.com/invowk/editorconfig/pkg/editorconfig"

	"github.com/bmatcuk/doublestar/v4"
)

// runResolve resolves every target and prints the results. Nothing is
// printed to stdout unless every target resolved.
func (a *App) runResolve(ctx context.Context, s *settings, args []string) error {
	targets := args
	if s.expandGlobs {
		targets = a.expandTargets(s, args)
	}

	resolver := a.newResolver(s)
	results := make([]resolved, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}

		props, err := resolver.Resolve(target)
		if err != nil {
			err = issue.ForResolve(err, "resolve properties", target)
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, s.verbose))
			return &ExitError{Code: ExitFailure, Err: err}
		}
		results = append(results, resolved{Target: target, Props: props})
	}

	if err := writeResults(a.stdout, s.format, results); err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("write output: %w", err)}
	}
	return nil
}

func (a *App) newResolver(s *settings) *editorconfig.Resolver {
	return editorconfig.NewResolver(
		editorconfig.WithFs(a.fs),
		editorconfig.WithConfFileName(string(s.confFilename)),
		editorconfig.WithLogger(s.logger),
	)
}

// expandTargets replaces each pattern with the files it matches on the host
// filesystem. Patterns without a match, or that fail to parse, are kept as
// literal targets and reported with a warning on stderr.
func (a *App) expandTargets(s *settings, patterns []string) []string {
	var targets []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		switch {
		case err != nil:
			a.warn("invalid glob %q, resolving it literally: %v", pattern, err)
			targets = append(targets, pattern)
		case len(matches) == 0:
			a.warn("glob %q matched no files, resolving it literally", pattern)
			targets = append(targets, pattern)
		default:
			s.logger.Debug("glob pattern expanded", "pattern", pattern, "matches", len(matches))
			targets = append(targets, matches...)
		}
	}
	return targets
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+fmt.Sprintf(format, args...))
}
