// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/invowk/editorconfig/pkg/fnmatch"
)

// Layer is what a single configuration file contributes for one target.
type Layer struct {
	// Values holds the matched properties. Keys are lowercase; when Root is
	// set it also carries root=true.
	Values *Properties
	// Root is set when the file ends the cascade.
	Root bool
}

// Layer matches every section of f against target, an absolute path, and
// returns the resulting properties with derived indentation keys applied.
func (f *File) Layer(target string) *Layer {
	return resolveLayer(f, target, log.New(io.Discard))
}

func resolveLayer(f *File, target string, logger *log.Logger) *Layer {
	layer := &Layer{Values: newProperties(), Root: f.Root}
	if f.Root {
		layer.Values.set(rootKey, "true")
	}

	rel, err := filepath.Rel(filepath.Dir(f.Path), target)
	if err != nil {
		logger.Debug("target outside configuration directory", "file", f.Path, "target", target, "error", err)
		return layer
	}
	rel = filepath.ToSlash(rel)

	for _, sec := range f.Sections {
		m, err := fnmatch.Compile(sec.Pattern)
		if err != nil {
			logger.Debug("section never matches", "file", f.Path, "pattern", sec.Pattern, "error", err)
			continue
		}
		if !m.Match(rel) {
			continue
		}
		for _, p := range sec.Pairs {
			layer.Values.set(strings.ToLower(p.Key), p.Value)
		}
	}

	deriveIndentation(layer.Values)
	return layer
}

// deriveIndentation fills indent_size and tab_width from each other. The
// rules run in order, each one seeing the result of the previous.
func deriveIndentation(p *Properties) {
	if style, ok := p.Get(KeyIndentStyle); ok && strings.EqualFold(style, indentTab) && !p.Has(KeyIndentSize) {
		p.set(KeyIndentSize, indentTab)
	}

	if size, ok := p.Get(KeyIndentSize); ok && !strings.EqualFold(size, indentTab) && !p.Has(KeyTabWidth) {
		p.set(KeyTabWidth, size)
	}

	if size, ok := p.Get(KeyIndentSize); ok && strings.EqualFold(size, indentTab) {
		if width, ok := p.Get(KeyTabWidth); ok {
			p.set(KeyIndentSize, width)
		}
	}
}
