// Package topology looks up the topology label of a structure by file name.
//
// Tables map a PDB file name (with extension) to a label such as
// "PDZ_circular_12". Only the part before the first underscore is reported.
// Tables are YAML, or JSON with comments and trailing commas (.json, .jsonc).
package topology

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const separator = "_"

// Table maps a file name to its full topology label.
type Table map[string]string

// Load reads a table from path, choosing the format by extension.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var table Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		table, err = ParseJSON(data)
	default:
		table, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseJSON parses a JSON object of strings. Comments and trailing commas are allowed.
func ParseJSON(data []byte) (Table, error) {
	var table Table
	if err := json.Unmarshal(jsonc.ToJSON(data), &table); err != nil {
		return nil, fmt.Errorf("parsing topology table: %w", err)
	}
	return table, nil
}

// ParseYAML parses a YAML mapping of strings.
func ParseYAML(data []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing topology table: %w", err)
	}
	return table, nil
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}

// Lookup returns the first part of the label for key, or "" if there is none.
// A nil table has no labels.
func (t Table) Lookup(key string) string {
	return FirstPart(t[key])
}

// FirstPart returns value up to its first underscore.
func FirstPart(value string) string {
	first, _, _ := strings.Cut(value, separator)
	return first
}
