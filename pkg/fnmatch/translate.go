// SPDX-License-Identifier: MPL-2.0

package fnmatch

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// anyDepth lets a slash-free glob match below any directory.
	anyDepth = `(?:.*/)?`
	// optionalDirs replaces "/**/" so that "a/**/b" also matches "a/b".
	optionalDirs = `(?:/.*)?/`
	starExpr     = `[^/]*`
	globstarExpr = `.*`
	oneCharExpr  = `[^/]`
	// intExpr captures the integer checked against a {N..M} bound.
	intExpr = `(0|-?[1-9]\d*)`
)

var numericRange = regexp.MustCompile(`^([+-]?\d+)\.\.([+-]?\d+)$`)

// translator accumulates the numeric bounds found while a glob is rewritten.
// Capture groups are only ever emitted for {N..M}, so ranges[i] belongs to
// submatch i+1.
type translator struct {
	ranges []Range
}

// translate returns the anchored regular expression for pattern and the
// bounds of its numeric ranges in pattern order.
func translate(pattern string) (string, []Range) {
	anchored := strings.Contains(pattern, "/")
	body := pattern
	if anchored {
		body = strings.TrimPrefix(body, "/")
	}

	t := &translator{}
	expr, _ := t.translate([]rune(body), true)

	var sb strings.Builder
	sb.WriteString("^")
	if !anchored {
		sb.WriteString(anyDepth)
	}
	sb.WriteString(expr)
	sb.WriteString("$")

	return sb.String(), t.ranges
}

// translate rewrites p. The second result reports whether an alternation
// group was emitted, which turns an enclosing comma-free brace group into an
// alternation instead of literal braces.
func (t *translator) translate(p []rune, top bool) (string, bool) {
	var sb strings.Builder
	alternation := false

	for i := 0; i < len(p); {
		switch p[i] {
		case '\\':
			if i+1 < len(p) {
				sb.WriteString(quote(p[i+1]))
				i += 2
			} else {
				sb.WriteString(`\\`)
				i++
			}

		case '*':
			n := starRun(p, i)
			switch {
			case n == 1:
				sb.WriteString(starExpr)
				i++
			case top && i == 0 && n < len(p) && p[n] == '/':
				// Leading "**/" may match zero directories.
				sb.WriteString(anyDepth)
				i = n + 1
			default:
				sb.WriteString(globstarExpr)
				i += n
			}

		case '/':
			n := starRun(p, i+1)
			if n >= 2 && i+1+n < len(p) && p[i+1+n] == '/' {
				sb.WriteString(optionalDirs)
				i += n + 2
			} else {
				sb.WriteByte('/')
				i++
			}

		case '?':
			sb.WriteString(oneCharExpr)
			i++

		case '[':
			class, next, ok := bracket(p, i)
			if !ok {
				sb.WriteString(`\[`)
				i++
				continue
			}
			sb.WriteString(class)
			i = next

		case '{':
			end := closingBrace(p, i)
			if end < 0 {
				sb.WriteString(`\{`)
				i++
				continue
			}
			expr, alt := t.brace(p[i+1 : end])
			sb.WriteString(expr)
			alternation = alternation || alt
			i = end + 1

		case '}':
			sb.WriteString(`\}`)
			i++

		default:
			sb.WriteString(quote(p[i]))
			i++
		}
	}

	return sb.String(), alternation
}

// brace rewrites the content of a balanced {...} group.
func (t *translator) brace(inner []rune) (string, bool) {
	if m := numericRange.FindStringSubmatch(string(inner)); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil {
			if lo > hi {
				lo, hi = hi, lo
			}
			t.ranges = append(t.ranges, Range{Min: lo, Max: hi})
			return intExpr, false
		}
	}

	parts := splitCases(inner)
	if len(parts) == 1 {
		expr, nested := t.translate(parts[0], false)
		if !nested {
			return `\{` + expr + `\}`, false
		}
		return "(?:" + expr + ")", true
	}

	cases := make([]string, 0, len(parts))
	optional := false
	for _, part := range parts {
		if len(part) == 0 {
			optional = true
			continue
		}
		expr, _ := t.translate(part, false)
		cases = append(cases, expr)
	}

	group := "(?:" + strings.Join(cases, "|") + ")"
	if optional {
		group += "?"
	}
	return group, true
}

// bracket rewrites the character class opening at p[i]. ok is false when the
// class is never closed.
func bracket(p []rune, i int) (class string, next int, ok bool) {
	var sb strings.Builder
	sb.WriteByte('[')

	j := i + 1
	if j < len(p) && (p[j] == '!' || p[j] == '^') {
		sb.WriteByte('^')
		j++
	}

	// A ']' right after the opener is a member, not the terminator.
	first := true
	for ; j < len(p); j++ {
		r := p[j]
		switch {
		case r == ']' && !first:
			sb.WriteByte(']')
			return sb.String(), j + 1, true
		case r == '\\' && j+1 < len(p):
			j++
			sb.WriteString(classQuote(p[j]))
		case r == '[' || r == ']' || r == '\\' || r == '^':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
		first = false
	}

	return "", i, false
}

// closingBrace returns the index of the '}' balancing the '{' at p[i], or -1.
func closingBrace(p []rune, i int) int {
	depth := 0
	for j := i; j < len(p); j++ {
		switch p[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// splitCases splits a brace group on its top-level, unescaped commas.
func splitCases(inner []rune) [][]rune {
	var parts [][]rune
	depth, start := 0, 0
	for j := 0; j < len(inner); j++ {
		switch inner[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, inner[start:j])
				start = j + 1
			}
		}
	}
	return append(parts, inner[start:])
}

func starRun(p []rune, i int) int {
	n := 0
	for i+n < len(p) && p[i+n] == '*' {
		n++
	}
	return n
}

func quote(r rune) string {
	return regexp.QuoteMeta(string(r))
}

func classQuote(r rune) string {
	if r < 0x80 && !isAlnum(byte(r)) {
		return `\` + string(r)
	}
	return string(r)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
