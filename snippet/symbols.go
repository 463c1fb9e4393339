package snippet

import (
	"regexp"
	"strings"

	"github.com/randalmurphal/snippetkit/filter"
)

// symbolPattern matches {{name}} and {{name|filter}}.
var symbolPattern = regexp.MustCompile(`\{\{([^{?}|]+)(\|([^{?}]+))?\}\}`)

// Symbol is a placeholder found in a line.
type Symbol struct {
	// Text is the placeholder exactly as written.
	Text   string
	Name   string
	Filter filter.Kind

	start, end int
}

// Special reports whether the symbol is expanded by the renderer rather
// than looked up in the parameter map.
func (s Symbol) Special() bool {
	return s.Name == ChildrenSymbol || s.Name == SVGSymbol
}

// Substitution is the outcome of replacing symbols in a line.
type Substitution struct {
	Line string
	// Resolved is false when the line references an unknown parameter.
	Resolved bool
	// Deferred lists special symbols left in Line for the caller.
	Deferred []Symbol
}

// FindSymbols returns the placeholders in line that are not escaped with a
// preceding backslash.
func FindSymbols(line string) []Symbol {
	locs := symbolPattern.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	symbols := make([]Symbol, 0, len(locs))
	for _, loc := range locs {
		if loc[0] > 0 && line[loc[0]-1] == '\\' {
			continue
		}
		symbol := Symbol{
			Text:  line[loc[0]:loc[1]],
			Name:  strings.TrimSpace(line[loc[2]:loc[3]]),
			start: loc[0],
			end:   loc[1],
		}
		if loc[6] >= 0 {
			symbol.Filter = filter.ParseKind(line[loc[6]:loc[7]])
		}
		symbols = append(symbols, symbol)
	}
	return symbols
}

// Substitute replaces the symbols in line with filtered parameter values.
// Special symbols that params does not define are left in place and
// reported in Deferred. Any other unknown symbol makes the line unresolved.
func Substitute(line string, params Params) Substitution {
	sub := Substitution{Resolved: true}
	sub.Line = replaceSymbols(line, FindSymbols(line), func(symbol Symbol) (string, bool) {
		if value, ok := lookupSymbol(symbol, params); ok {
			return value, true
		}
		if symbol.Special() {
			sub.Deferred = append(sub.Deferred, symbol)
		} else {
			sub.Resolved = false
		}
		return "", false
	})
	return sub
}

// lookupSymbol resolves symbol against params.
func lookupSymbol(symbol Symbol, params Params) (string, bool) {
	value, ok := params.Lookup(symbol.Name)
	if !ok {
		return "", false
	}
	return filter.Apply(value, params.Raw(symbol.Name), symbol.Filter), true
}

// replaceSymbols rebuilds line with each symbol replaced by the value
// resolve returns. Symbols resolve declines keep their original text.
func replaceSymbols(line string, symbols []Symbol, resolve func(Symbol) (string, bool)) string {
	if len(symbols) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	last := 0
	for _, symbol := range symbols {
		b.WriteString(line[last:symbol.start])
		if value, ok := resolve(symbol); ok {
			b.WriteString(value)
		} else {
			b.WriteString(symbol.Text)
		}
		last = symbol.end
	}
	b.WriteString(line[last:])
	return b.String()
}

// Unescape turns escaped placeholders (\{{) into literal braces.
func Unescape(line string) string {
	return strings.ReplaceAll(line, `\{{`, "{{")
}
