// SPDX-License-Identifier: MPL-2.0

package editorconfig

import "unicode/utf8"

// Property names with defined semantics. Their values are lowercased during
// resolution.
const (
	KeyIndentStyle            = "indent_style"
	KeyIndentSize             = "indent_size"
	KeyTabWidth               = "tab_width"
	KeyEndOfLine              = "end_of_line"
	KeyCharset                = "charset"
	KeyTrimTrailingWhitespace = "trim_trailing_whitespace"
	KeyInsertFinalNewline     = "insert_final_newline"
)

const (
	// MaxKeyLength is the longest property name kept in a resolution.
	MaxKeyLength = 50
	// MaxValueLength is the longest property value kept in a resolution.
	MaxValueLength = 255

	indentTab = "tab"
)

var knownKeys = map[string]struct{}{
	KeyIndentStyle:            {},
	KeyIndentSize:             {},
	KeyTabWidth:               {},
	KeyEndOfLine:              {},
	KeyCharset:                {},
	KeyTrimTrailingWhitespace: {},
	KeyInsertFinalNewline:     {},
}

// IsKnownKey reports whether key (lowercase) has defined semantics.
func IsKnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

func withinLimits(key, value string) bool {
	return utf8.RuneCountInString(key) <= MaxKeyLength && utf8.RuneCountInString(value) <= MaxValueLength
}
