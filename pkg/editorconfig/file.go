// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// rootKey is the preamble directive that ends the cascade.
const rootKey = "root"

// loadOptions tunes ini.v1 to the .editorconfig dialect: '=' is the only
// delimiter, section headers may repeat, a trailing '\' is literal, quotes
// are kept and inline comments need a leading space.
var loadOptions = ini.LoadOptions{
	AllowNonUniqueSections:   true,
	IgnoreContinuation:       true,
	PreserveSurroundedQuote:  true,
	SpaceBeforeInlineComment: true,
	KeyValueDelimiters:       "=",
}

type (
	// Pair is one key/value line as written in the file.
	Pair struct {
		Key   string
		Value string
	}

	// Section is a glob header and the pairs declared under it, in file order.
	Section struct {
		Pattern string
		Pairs   []Pair
	}

	// File is the parsed content of one configuration file.
	File struct {
		// Path is the location the file was read from. Section globs are
		// matched relative to its directory.
		Path string
		// Root is set when the preamble declares root = true.
		Root bool
		// Preamble holds the pairs that precede the first section header.
		Preamble []Pair
		// Sections are the glob sections in declaration order.
		Sections []Section
	}
)

// Parse reads configuration content from r. path is recorded as File.Path.
func Parse(r io.Reader, path string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newPathError("read", path, ErrIO, err)
	}
	return ParseBytes(data, path)
}

// ParseFile reads and parses the configuration file at path on fsys.
func ParseFile(fsys afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, newPathError("read", path, ErrIO, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses configuration content. path is recorded as File.Path.
func ParseBytes(data []byte, path string) (*File, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, newPathError("parse", path, ErrParse, err)
	}

	f := &File{Path: path}
	for _, sec := range cfg.Sections() {
		pairs := make([]Pair, 0, len(sec.Keys()))
		for _, k := range sec.Keys() {
			pairs = append(pairs, Pair{Key: k.Name(), Value: k.Value()})
		}

		if sec.Name() == ini.DefaultSection {
			f.Preamble = append(f.Preamble, pairs...)
			continue
		}
		f.Sections = append(f.Sections, Section{Pattern: sec.Name(), Pairs: pairs})
	}

	for _, p := range f.Preamble {
		if strings.EqualFold(p.Key, rootKey) {
			f.Root = strings.EqualFold(strings.TrimSpace(p.Value), "true")
		}
	}

	return f, nil
}
