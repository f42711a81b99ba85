// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/invowk/editorconfig/internal/config"
	"github.com/invowk/editorconfig/pkg/editorconfig"

	"github.com/pelletier/go-toml/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// resolved pairs a target, as given on the command line, with its properties.
type resolved struct {
	Target string
	Props  *editorconfig.Properties
}

// writeResults prints results in format. A single result is printed bare;
// several are keyed by target.
func writeResults(w io.Writer, format config.OutputFormat, results []resolved) error {
	switch format {
	case config.FormatProperties:
		return writeProperties(w, results)
	case config.FormatJSON:
		return writeJSON(w, results)
	case config.FormatYAML:
		return writeYAML(w, results)
	case config.FormatTOML:
		return writeTOML(w, results)
	default:
		return format.Validate()
	}
}

func writeProperties(w io.Writer, results []resolved) error {
	var buf bytes.Buffer
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(&buf, "[%s]\n", r.Target)
		}
		buf.WriteString(r.Props.String())
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeJSON(w io.Writer, results []resolved) error {
	compact, err := json.Marshal(document(results))
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

func writeYAML(w io.Writer, results []resolved) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(results)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// document returns the value the ordered encoders print: the properties of a
// single result, or the results keyed by target in command-line order.
func document(results []resolved) any {
	if len(results) == 1 {
		return results[0].Props
	}
	doc := orderedmap.New[string, *editorconfig.Properties]()
	for _, r := range results {
		doc.Set(r.Target, r.Props)
	}
	return doc
}

// writeTOML encodes through maps, so keys come out sorted.
func writeTOML(w io.Writer, results []resolved) error {
	var v any
	if len(results) == 1 {
		v = results[0].Props.Map()
	} else {
		tables := make(map[string]map[string]string, len(results))
		for _, r := range results {
			tables[r.Target] = r.Props.Map()
		}
		v = tables
	}

	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
