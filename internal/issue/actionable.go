// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is a user-facing error: what was attempted, on which
	// target, which resolution step failed on which file, and what the user
	// can do about it.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("resolve properties").
	//		WithResource("src/main.go").
	//		At("parse", "/repo/.editorconfig").
	//		WithSuggestion("Fix the syntax of /repo/.editorconfig").
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase, such as "resolve properties".
		Operation string
		// Resource is the target the user asked about (optional).
		Resource string
		// Step names the resolution step that failed: "parse", "read",
		// "stat", "find" or "crawl" (optional).
		Step string
		// File is the configuration file or directory Step was working on
		// (optional).
		File string
		// Suggestions are shown one per line under the message.
		Suggestions []string
		// Cause is the wrapped error.
		Cause error
	}

	// ErrorContext builds an ActionableError field by field.
	ErrorContext struct {
		ae ActionableError
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// HasSuggestions reports whether any suggestion is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Location returns "<step> <file>", or "" when neither is known.
func (e *ActionableError) Location() string {
	return strings.TrimSpace(e.Step + " " + e.File)
}

// Format renders the message, the failing step when it names a file other
// than the target, and one bulleted line per suggestion. With verbose set it
// appends the numbered chain of wrapped causes.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if e.File != "" && e.File != e.Resource {
		fmt.Fprintf(&msg, "\n\nFailed step: %s", e.Location())
	}

	if e.HasSuggestions() {
		msg.WriteByte('\n')
		for _, s := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
		}
	}

	return msg.String()
}

// WithOperation sets the operation, as a verb phrase.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.ae.Operation = op
	return c
}

// WithResource sets the target the user asked about.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.ae.Resource = res
	return c
}

// At records the resolution step that failed and the file it worked on.
func (c *ErrorContext) At(step, file string) *ErrorContext {
	c.ae.Step = step
	c.ae.File = file
	return c
}

// WithSuggestion appends one suggestion.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.ae.Suggestions = append(c.ae.Suggestions, sug)
	return c
}

// WithSuggestions appends several suggestions.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.ae.Suggestions = append(c.ae.Suggestions, sugs...)
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.ae.Cause = err
	return c
}

// Build returns a copy of the error under construction, or nil when no
// operation was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.ae.Operation == "" {
		return nil
	}
	ae := c.ae
	ae.Suggestions = append([]string(nil), c.ae.Suggestions...)
	return &ae
}

// BuildError is Build returned through the error interface, so that a missing
// operation yields an untyped nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
