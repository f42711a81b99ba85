// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"

	"github.com/invowk/editorconfig/pkg/editorconfig"
)

// ForResolve wraps an error returned by the editorconfig package with
// suggestions matching its kind. When err carries a *editorconfig.PathError,
// its Op and Path become the failed step and file. It returns nil when err is
// nil.
func ForResolve(err error, operation, target string) error {
	if err == nil {
		return nil
	}

	ctx := NewErrorContext().
		WithOperation(operation).
		WithResource(target).
		Wrap(err)

	var pe *editorconfig.PathError
	file := target
	if errors.As(err, &pe) {
		file = pe.Path
		ctx.At(pe.Op, pe.Path)
	}

	switch {
	case errors.Is(err, editorconfig.ErrParse):
		ctx.WithSuggestions(
			"Fix the syntax of "+file,
			"Every line must be a [section] header, a key = value pair, or a comment",
		)
	case errors.Is(err, editorconfig.ErrMalformedPath):
		ctx.WithSuggestion("Pass a file path with a parent directory, such as ./main.go")
	case errors.Is(err, editorconfig.ErrIO):
		ctx.WithSuggestion("Check the permissions of " + file + " and its parent directories")
	case errors.Is(err, editorconfig.ErrNotFound):
		ctx.WithSuggestions(
			"Add root = true to the top-most configuration file of the project",
			"Use --conf-filename if the project uses a different file name",
		)
	}

	return ctx.BuildError()
}
