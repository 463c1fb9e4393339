package snippet

import (
	"fmt"
	"strings"
)

const (
	// MaxDepth is the default ceiling for children expansion.
	MaxDepth = 12

	// ChildrenSymbol expands into the rendered children of a node.
	ChildrenSymbol = "figma.children"

	// SVGSymbol expands into the SVG export of a node.
	SVGSymbol = "figma.svg"
)

// Language is the syntax a template renders into.
type Language string

// Supported languages.
const (
	LanguageBash       Language = "BASH"
	LanguageCPP        Language = "CPP"
	LanguageCSS        Language = "CSS"
	LanguageGo         Language = "GO"
	LanguageGraphQL    Language = "GRAPHQL"
	LanguageHTML       Language = "HTML"
	LanguageJavaScript Language = "JAVASCRIPT"
	LanguageJSON       Language = "JSON"
	LanguageKotlin     Language = "KOTLIN"
	LanguagePlaintext  Language = "PLAINTEXT"
	LanguagePython     Language = "PYTHON"
	LanguageRuby       Language = "RUBY"
	LanguageRust       Language = "RUST"
	LanguageSQL        Language = "SQL"
	LanguageSwift      Language = "SWIFT"
	LanguageTypeScript Language = "TYPESCRIPT"
)

// Languages returns all supported languages.
func Languages() []Language {
	return []Language{
		LanguageBash,
		LanguageCPP,
		LanguageCSS,
		LanguageGo,
		LanguageGraphQL,
		LanguageHTML,
		LanguageJavaScript,
		LanguageJSON,
		LanguageKotlin,
		LanguagePlaintext,
		LanguagePython,
		LanguageRuby,
		LanguageRust,
		LanguageSQL,
		LanguageSwift,
		LanguageTypeScript,
	}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// Definition is a titled, language-tagged template body.
type Definition struct {
	Title    string   `json:"title" yaml:"title" toml:"title" jsonschema:"required,minLength=1"`
	Language Language `json:"language" yaml:"language" toml:"language" jsonschema:"required"`
	Code     string   `json:"code" yaml:"code" toml:"code" jsonschema:"required"`
}

// Match returns the identity used to pair this definition with templates
// on child nodes.
func (d Definition) Match() Match {
	return Match{Title: d.Title, Language: d.Language}
}

// Validate checks that the definition has a title and a supported language.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidDefinition)
	}
	if !d.Language.Valid() {
		return fmt.Errorf("%w: %q: unknown language %q", ErrInvalidDefinition, d.Title, d.Language)
	}
	return nil
}

// ValidateDefinitions validates every definition in defs.
func ValidateDefinitions(defs []Definition) error {
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("definition %d: %w", i, err)
		}
	}
	return nil
}

// Match identifies a template by title and language.
type Match struct {
	Title    string
	Language Language
}

// Matches reports whether d has the same title and language as m.
func (m Match) Matches(d Definition) bool {
	return d.Title == m.Title && d.Language == m.Language
}

// String formats the match as "title-LANGUAGE".
func (m Match) String() string {
	return m.Title + "-" + string(m.Language)
}

// Result is a rendered snippet.
type Result struct {
	Title    string   `json:"title" yaml:"title"`
	Language Language `json:"language" yaml:"language"`
	Code     string   `json:"code" yaml:"code"`
}

// Rendering holds the rendered results for a set of definitions, and the
// unrendered templates they came from at the same indices.
type Rendering struct {
	Results   []Result
	Templates []Result
}

// Append adds the contents of other to r.
func (r *Rendering) Append(other *Rendering) {
	if other == nil {
		return
	}
	r.Results = append(r.Results, other.Results...)
	r.Templates = append(r.Templates, other.Templates...)
}

// Recursion carries state through children expansion.
type Recursion struct {
	// Indent prefixes every line of the rendered output.
	Indent string

	// Depth is the number of children expansions above this render.
	Depth int

	// Match restricts rendering to templates with this title and language.
	// It is nil at the top level.
	Match *Match
}

// Child returns the recursion state for rendering a child one level down.
func (rc Recursion) Child(match Match) Recursion {
	return Recursion{Depth: rc.Depth + 1, Match: &match}
}

// rawTemplateTitle is the title of the unrendered template result.
func rawTemplateTitle(title string, tag NodeType) string {
	return fmt.Sprintf("%s: Template (%s)", title, tag)
}
