package registry

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/snippetkit/snippet"
)

// SchemaID is the $id of the registry document schema.
const SchemaID = "https://github.com/randalmurphal/snippetkit/registry/templates.schema.json"

// Schema returns the JSON Schema of a registry document.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != reflect.TypeFor[snippet.Language]() {
				return nil
			}
			languages := snippet.Languages()
			enum := make([]any, 0, len(languages))
			for _, l := range languages {
				enum = append(enum, string(l))
			}
			return &jsonschema.Schema{Type: "string", Enum: enum}
		},
	}
	schema := reflector.Reflect(&Templates{})
	schema.ID = SchemaID
	schema.Title = "Snippet templates"
	return json.MarshalIndent(schema, "", "  ")
}
