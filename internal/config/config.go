// Package config loads simulation tunables from YAML files and command-line
// overrides into the flat key/value form accepted by the sims' FromMap.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotScalar is returned when a config key maps to a list or nested mapping.
var ErrNotScalar = errors.New("value is not a scalar")

// LoadFile reads a flat YAML mapping from path. An empty path yields an empty
// map.
func LoadFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	values, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}

// Parse decodes a flat YAML mapping. Scalars are kept in their literal form so
// the sims' own parsers decide what is valid.
func Parse(data []byte) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	values := make(map[string]string, len(raw))
	for key, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("key %q (line %d): %w", key, node.Line, ErrNotScalar)
		}
		values[key] = node.Value
	}
	return values, nil
}

// Merge returns a new map holding base overlaid with every later layer.
func Merge(base map[string]string, layers ...map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// Overrides collects repeated key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	if o == nil {
		return ""
	}
	return strings.Join(*o, ",")
}

// Set appends a raw key=value pair.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q: expected key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map converts the collected pairs into a map. Later pairs win.
func (o Overrides) Map() map[string]string {
	out := make(map[string]string, len(o))
	for _, kv := range o {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(parts[1])
	}
	return out
}

// Keys returns the map keys in sorted order.
func Keys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
