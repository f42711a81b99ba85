// SPDX-License-Identifier: MPL-2.0

// Package editorconfig resolves the editor properties that apply to a file.
//
// Resolution walks from the file's directory up to the filesystem root,
// reading every configuration file (".editorconfig" by default) on the way.
// Each file contributes the properties of the sections whose glob matches the
// file, later sections overriding earlier ones. Across files the nearest one
// wins, and a file whose preamble sets "root = true" ends the walk.
//
//	props, err := editorconfig.Resolve("src/main.go")
//	if err != nil {
//		return err
//	}
//	style, _ := props.Get("indent_style")
//
// A missing configuration file is never an error: a file with no
// configuration along its path resolves to empty Properties. Files that
// exist but cannot be parsed abort resolution with an error wrapping
// ErrParse.
//
// File organization:
//   - properties.go: the ordered Properties result
//   - file.go: INI parsing into File/Section
//   - layer.go: per-file section matching and derived properties
//   - crawl.go: candidate configuration paths for a target
//   - resolver.go: the cascade (Resolver, Resolve, ResolveNamed)
//   - find.go: raw discovery of the nearest root configuration file
package editorconfig
