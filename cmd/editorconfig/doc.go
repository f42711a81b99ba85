// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the editorconfig command line: it resolves the
// properties that apply to each target file and prints them in the
// requested format.
package cmd
