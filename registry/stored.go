package registry

import (
	"encoding/json"
	"fmt"

	"github.com/randalmurphal/snippetkit/snippet"
)

// storedFields is the exact key set of a node-local definition.
const storedFields = 3

// DecodeStored decodes node-local template data. It returns nil when data
// is empty, not a JSON array, or holds any entry that is not exactly a
// title, a known language, and code.
func DecodeStored(data string) []snippet.Definition {
	if data == "" {
		return nil
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil
	}
	defs := make([]snippet.Definition, 0, len(entries))
	for _, entry := range entries {
		def, ok := decodeEntry(entry)
		if !ok {
			return nil
		}
		defs = append(defs, def)
	}
	return defs
}

func decodeEntry(entry map[string]json.RawMessage) (snippet.Definition, bool) {
	if len(entry) != storedFields {
		return snippet.Definition{}, false
	}
	var def snippet.Definition
	for key, target := range map[string]any{
		"title":    &def.Title,
		"language": &def.Language,
		"code":     &def.Code,
	} {
		raw, ok := entry[key]
		if !ok || !isString(raw) || json.Unmarshal(raw, target) != nil {
			return snippet.Definition{}, false
		}
	}
	if !def.Language.Valid() {
		return snippet.Definition{}, false
	}
	return def, true
}

func isString(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '"'
}

// EncodeStored encodes definitions in the node-local form.
func EncodeStored(defs []snippet.Definition) (string, error) {
	if err := snippet.ValidateDefinitions(defs); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTemplates, err)
	}
	if defs == nil {
		defs = []snippet.Definition{}
	}
	data, err := json.Marshal(defs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
