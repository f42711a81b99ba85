// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Find when no root configuration file exists
	// between the starting directory and the filesystem root.
	ErrNotFound = errors.New("configuration file not found")
	// ErrMalformedPath is returned for targets that are empty, cannot be made
	// absolute, or have no parent directory.
	ErrMalformedPath = errors.New("malformed path")
	// ErrParse is returned when an existing configuration file is not valid
	// INI content.
	ErrParse = errors.New("parse error")
	// ErrIO is returned for filesystem failures other than non-existence.
	ErrIO = errors.New("i/o error")
)

// PathError records the operation and path behind a resolution failure.
// Err wraps one of the package sentinels, so errors.Is(err, ErrParse) and
// friends work on any error returned by this package.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *PathError) Unwrap() error { return e.Err }

func newPathError(op, path string, kind, cause error) *PathError {
	err := kind
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return &PathError{Op: op, Path: path, Err: err}
}
