// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties is an ordered set of editor properties. Keys keep the position
// of their first assignment. Properties returned by a Resolver are not
// modified afterwards and may be read concurrently.
type Properties struct {
	m *orderedmap.OrderedMap[string, string]
}

func newProperties() *Properties {
	return &Properties{m: orderedmap.New[string, string]()}
}

// Get returns the value of key and whether it is set.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil || p.m == nil {
		return "", false
	}
	return p.m.Get(key)
}

// Value returns the value of key, or "" when it is not set.
func (p *Properties) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// Has reports whether key is set.
func (p *Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Keys returns the property names in order.
func (p *Properties) Keys() []string {
	if p.Len() == 0 {
		return nil
	}
	out := make([]string, 0, p.Len())
	for k := range p.All() {
		out = append(out, k)
	}
	return out
}

// All iterates over the properties in order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil || p.m == nil {
			return
		}
		for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the properties.
func (p *Properties) Map() map[string]string {
	out := make(map[string]string, p.Len())
	for k, v := range p.All() {
		out[k] = v
	}
	return out
}

// String renders the properties as key=value lines.
func (p *Properties) String() string {
	var sb strings.Builder
	for k, v := range p.All() {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalJSON encodes the properties as a JSON object in key order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("{}"), nil
	}
	return p.m.MarshalJSON()
}

// MarshalYAML encodes the properties as a YAML mapping in key order.
func (p *Properties) MarshalYAML() (any, error) {
	if p.Len() == 0 {
		return map[string]string{}, nil
	}
	return p.m.MarshalYAML()
}

// set assigns key, keeping its original position when already present.
func (p *Properties) set(key, value string) {
	p.m.Set(key, value)
}

// setIfAbsent assigns key only when it is not set yet.
func (p *Properties) setIfAbsent(key, value string) bool {
	if _, ok := p.m.Get(key); ok {
		return false
	}
	p.m.Set(key, value)
	return true
}
