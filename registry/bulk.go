package registry

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/randalmurphal/snippetkit/snippet"
)

// Bulk maps component keys to templates. It is the exchange format for
// importing templates into many components at once.
type Bulk map[string][]snippet.Definition

// Keys returns the component keys in sorted order.
func (b Bulk) Keys() []string {
	return slices.Sorted(maps.Keys(b))
}

// Validate checks every key and definition.
func (b Bulk) Validate() error {
	for _, key := range b.Keys() {
		if key == "" {
			return fmt.Errorf("%w: empty component key", ErrInvalidTemplates)
		}
		if err := snippet.ValidateDefinitions(b[key]); err != nil {
			return fmt.Errorf("%w: component %s: %w", ErrInvalidTemplates, key, err)
		}
	}
	return nil
}

// Encode marshals b in the given format.
func (b Bulk) Encode(format Format) ([]byte, error) {
	if b == nil {
		b = Bulk{}
	}
	return Encode(b, format)
}

// ParseBulk decodes and validates bulk data.
func ParseBulk(data []byte, format Format) (Bulk, error) {
	b := Bulk{}
	if err := Decode(data, format, &b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplates, err)
	}
	if b == nil {
		b = Bulk{}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadBulk reads bulk data from path. The format is chosen by the file
// extension.
func LoadBulk(path string) (Bulk, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b, err := ParseBulk(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
