// SPDX-License-Identifier: MPL-2.0

package fnmatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxPatternLength is the longest glob Compile accepts. Longer section
// headers are never matched to bound translation cost.
const MaxPatternLength = 4096

var (
	// ErrPatternTooLong is returned by Compile for globs over MaxPatternLength.
	ErrPatternTooLong = errors.New("glob pattern too long")
	// ErrInvalidPattern is the sentinel wrapped by InvalidPatternError.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

type (
	// Matcher is a compiled glob.
	Matcher struct {
		pattern string
		re      *regexp.Regexp
		ranges  []Range
	}

	// Range is the inclusive bound of one {N..M} expression.
	Range struct {
		Min int
		Max int
	}

	// InvalidPatternError is returned when a translated glob is rejected by
	// the regexp engine (e.g. a reversed character range like [z-a]).
	InvalidPatternError struct {
		Pattern string
		Expr    string
		Err     error
	}
)

// Compile translates pattern into a Matcher.
func Compile(pattern string) (*Matcher, error) {
	if n := utf8.RuneCountInString(pattern); n > MaxPatternLength {
		return nil, fmt.Errorf("%w: %d characters (max %d)", ErrPatternTooLong, n, MaxPatternLength)
	}

	expr, ranges := translate(pattern)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Expr: expr, Err: err}
	}

	return &Matcher{pattern: pattern, re: re, ranges: ranges}, nil
}

// Match reports whether the glob in pattern matches candidate. Patterns that
// fail to compile match nothing.
func Match(pattern, candidate string) bool {
	m, err := Compile(pattern)
	if err != nil {
		return false
	}
	return m.Match(candidate)
}

// Match reports whether candidate, a '/'-separated path relative to the
// directory of the configuration file, matches the glob. On Windows a '\\'
// in candidate is read as a separator; elsewhere it is a filename character.
func (m *Matcher) Match(candidate string) bool {
	if m == nil {
		return false
	}

	if filepath.Separator == '\\' {
		candidate = strings.ReplaceAll(candidate, `\`, "/")
	}

	if len(m.ranges) == 0 {
		return m.re.MatchString(candidate)
	}

	loc := m.re.FindStringSubmatchIndex(candidate)
	if loc == nil {
		return false
	}
	for i, r := range m.ranges {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			// The group sits in an alternative that did not participate.
			continue
		}
		n, err := strconv.Atoi(candidate[start:end])
		if err != nil || n < r.Min || n > r.Max {
			return false
		}
	}
	return true
}

// Pattern returns the glob the Matcher was compiled from.
func (m *Matcher) Pattern() string { return m.pattern }

// Expr returns the regular expression the glob was translated to.
func (m *Matcher) Expr() string { return m.re.String() }

// Ranges returns the numeric bounds in pattern order.
func (m *Matcher) Ranges() []Range {
	out := make([]Range, len(m.ranges))
	copy(out, m.ranges)
	return out
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns ErrInvalidPattern for errors.Is() compatibility.
func (e *InvalidPatternError) Unwrap() error { return ErrInvalidPattern }
