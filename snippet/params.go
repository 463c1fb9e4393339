package snippet

import (
	"encoding/json"
	"maps"
	"slices"
)

// Params is the parameter map a template is rendered against. Each key
// maps to a normalized value (lowercase, hyphen separated) and a raw value
// (the original display string). Both maps always share the same keys.
//
// Params is immutable; the zero value is an empty map.
type Params struct {
	values map[string]string
	raw    map[string]string
}

// NewParams builds a Params from normalized values and their raw
// counterparts. A key missing from raw uses its normalized value as raw.
// Keys present only in raw are ignored. The maps are copied.
func NewParams(values, raw map[string]string) Params {
	p := Params{
		values: make(map[string]string, len(values)),
		raw:    make(map[string]string, len(values)),
	}
	for key, value := range values {
		p.values[key] = value
		if r, ok := raw[key]; ok {
			p.raw[key] = r
		} else {
			p.raw[key] = value
		}
	}
	return p
}

// Lookup returns the normalized value for key.
func (p Params) Lookup(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Raw returns the raw value for key, or "" when absent.
func (p Params) Raw(key string) string {
	return p.raw[key]
}

// Len returns the number of keys.
func (p Params) Len() int {
	return len(p.values)
}

// Keys returns the keys in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Values returns a copy of the normalized map.
func (p Params) Values() map[string]string {
	return maps.Clone(p.values)
}

// RawValues returns a copy of the raw map.
func (p Params) RawValues() map[string]string {
	return maps.Clone(p.raw)
}

// With returns a copy of p with key set. Existing keys are replaced.
func (p Params) With(key, value, raw string) Params {
	next := Params{values: maps.Clone(p.values), raw: maps.Clone(p.raw)}
	if next.values == nil {
		next.values = make(map[string]string, 1)
		next.raw = make(map[string]string, 1)
	}
	next.values[key] = value
	next.raw[key] = raw
	return next
}

type paramsJSON struct {
	Params    map[string]string `json:"params"`
	ParamsRaw map[string]string `json:"paramsRaw"`
}

// MarshalJSON encodes p as {"params": {...}, "paramsRaw": {...}}.
func (p Params) MarshalJSON() ([]byte, error) {
	out := paramsJSON{Params: p.values, ParamsRaw: p.raw}
	if out.Params == nil {
		out.Params = map[string]string{}
		out.ParamsRaw = map[string]string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (p *Params) UnmarshalJSON(data []byte) error {
	var in paramsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = NewParams(in.Params, in.ParamsRaw)
	return nil
}
