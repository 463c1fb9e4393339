package registry

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/natefinch/atomic"

	"github.com/randalmurphal/snippetkit/snippet"
)

// Templates is a registry of shared templates. It implements
// snippet.Registry. A nil *Templates is an empty registry.
type Templates struct {
	// Components maps a component key to the templates for that component.
	Components map[string][]snippet.Definition `json:"components,omitempty" yaml:"components,omitempty" toml:"components,omitempty" jsonschema:"description=Templates keyed by component key"`

	// Types maps a node type to the templates for every node of that type.
	// DEFAULT applies to nodes with no other templates.
	Types map[snippet.NodeType][]snippet.Definition `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty" jsonschema:"description=Templates keyed by node type"`
}

var _ snippet.Registry = (*Templates)(nil)

// New returns an empty registry.
func New() *Templates {
	return &Templates{
		Components: make(map[string][]snippet.Definition),
		Types:      make(map[snippet.NodeType][]snippet.Definition),
	}
}

// ComponentTemplates returns the templates registered for a component key.
func (t *Templates) ComponentTemplates(key string) []snippet.Definition {
	if t == nil {
		return nil
	}
	return t.Components[key]
}

// TypeTemplates returns the templates registered for a node type.
func (t *Templates) TypeTemplates(nodeType snippet.NodeType) []snippet.Definition {
	if t == nil {
		return nil
	}
	return t.Types[nodeType]
}

// SetComponent replaces the templates for a component key. Empty defs
// removes the key.
func (t *Templates) SetComponent(key string, defs []snippet.Definition) {
	t.init()
	if len(defs) == 0 {
		delete(t.Components, key)
		return
	}
	t.Components[key] = slices.Clone(defs)
}

// SetType replaces the templates for a node type. Empty defs removes the
// type.
func (t *Templates) SetType(nodeType snippet.NodeType, defs []snippet.Definition) {
	t.init()
	if len(defs) == 0 {
		delete(t.Types, nodeType)
		return
	}
	t.Types[nodeType] = slices.Clone(defs)
}

// Merge copies every entry of other into t, replacing entries with the same
// key.
func (t *Templates) Merge(other *Templates) {
	if other == nil {
		return
	}
	for key, defs := range other.Components {
		t.SetComponent(key, defs)
	}
	for nodeType, defs := range other.Types {
		t.SetType(nodeType, defs)
	}
}

// Len returns the number of registered keys and types.
func (t *Templates) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Components) + len(t.Types)
}

// Validate checks every key and definition.
func (t *Templates) Validate() error {
	if t == nil {
		return nil
	}
	for _, key := range slices.Sorted(maps.Keys(t.Components)) {
		if key == "" {
			return fmt.Errorf("%w: empty component key", ErrInvalidTemplates)
		}
		if err := snippet.ValidateDefinitions(t.Components[key]); err != nil {
			return fmt.Errorf("%w: component %s: %w", ErrInvalidTemplates, key, err)
		}
	}
	for _, nodeType := range slices.Sorted(maps.Keys(t.Types)) {
		if nodeType == "" {
			return fmt.Errorf("%w: empty node type", ErrInvalidTemplates)
		}
		if err := snippet.ValidateDefinitions(t.Types[nodeType]); err != nil {
			return fmt.Errorf("%w: type %s: %w", ErrInvalidTemplates, nodeType, err)
		}
	}
	return nil
}

func (t *Templates) init() {
	if t.Components == nil {
		t.Components = make(map[string][]snippet.Definition)
	}
	if t.Types == nil {
		t.Types = make(map[snippet.NodeType][]snippet.Definition)
	}
}

// Parse decodes and validates a registry document.
func Parse(data []byte, format Format) (*Templates, error) {
	t := New()
	if err := Decode(data, format, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplates, err)
	}
	t.init()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a registry document from path. The format is chosen by the
// file extension.
func Load(path string) (*Templates, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Save validates t and writes it to path atomically in the format implied
// by the extension.
func Save(path string, t *Templates) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t == nil {
		t = New()
	}
	data, err := Encode(t, format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
