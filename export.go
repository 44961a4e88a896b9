// FILE: configfile/export.go
package configfile

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToMap converts the section's subtree into nested maps: tag values stay
// strings, subsections become sub-maps. When a tag and a subsection share a
// name the later entry wins. Declaration order is not representable in a
// map; use the text codec when order matters.
func (s *Section) ToMap() map[string]any {
	m := make(map[string]any)
	for _, e := range s.entries {
		if e.tv != nil {
			m[e.tv.Tag] = e.tv.Value
		} else {
			m[e.sub.name] = e.sub.ToMap()
		}
	}
	return m
}

// FromMap builds a section tree from nested maps, the inverse of ToMap.
// Keys are added in sorted order to keep the result deterministic; scalar
// values are stringified.
func FromMap(m map[string]any) *Section {
	root := NewSection()
	fillFromMap(root, m)
	root.ClearEditFlag()
	return root
}

func fillFromMap(s *Section, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := m[k].(type) {
		case map[string]any:
			fillFromMap(s.AddSubsection(k), v)
		default:
			s.AddTagValue(k, stringifyValue(v))
		}
	}
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ExportTOML writes the section's subtree as a TOML document, for interop
// with tooling that cannot read the native text grammar.
func ExportTOML(w io.Writer, s *Section) error {
	if err := toml.NewEncoder(w).Encode(s.ToMap()); err != nil {
		return fmt.Errorf("failed to marshal config data to TOML: %w", err)
	}
	return nil
}

// ExportYAML writes the section's subtree as a YAML document.
func ExportYAML(w io.Writer, s *Section) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.ToMap()); err != nil {
		return fmt.Errorf("failed to marshal config data to YAML: %w", err)
	}
	return enc.Close()
}

// ImportTOML parses a TOML document into a section tree.
func ImportTOML(r io.Reader) (*Section, error) {
	m := make(map[string]any)
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config data: %w", err)
	}
	return FromMap(m), nil
}

// ImportYAML parses a YAML document into a section tree.
func ImportYAML(r io.Reader) (*Section, error) {
	m := make(map[string]any)
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config data: %w", err)
	}
	return FromMap(m), nil
}
