package snippet

import (
	"regexp"
	"strings"
)

// directivePattern matches {{?body}} and {{!body}}. The body alternatives
// are tried in order: a single clause, an OR group, an AND group. A body
// mixing "&" and "|" matches none of them.
var directivePattern = regexp.MustCompile(`\{\{([?!])(([^}&|]+)|([^}&]+)|([^}|]+))\}\}`)

// clausePattern matches "symbol" or "symbol=value".
var clausePattern = regexp.MustCompile(`^([^=]+)(?:=(.+))?$`)

// Grouping is how a directive combines its clauses.
type Grouping int

const (
	// GroupSingle is a directive with one clause.
	GroupSingle Grouping = iota
	// GroupAny joins clauses with "|".
	GroupAny
	// GroupAll joins clauses with "&".
	GroupAll
)

// Clause is one presence or equality test inside a directive.
type Clause struct {
	Symbol string
	Value  string
	// Equality is set for "symbol=value" clauses.
	Equality bool
	// Valid is false when the clause text is not a recognizable test.
	// Invalid clauses are always false.
	Valid bool
}

// Directive is a conditional marker found in a line.
type Directive struct {
	// Text is the directive exactly as written, braces included.
	Text     string
	Negative bool
	Grouping Grouping
	Clauses  []Clause

	start, end int
}

// Evaluation is the outcome of evaluating the directives on a line.
type Evaluation struct {
	Directives []Directive
	Renderable bool
}

// ParseDirectives returns the directives in line in order of appearance.
func ParseDirectives(line string) []Directive {
	locs := directivePattern.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	directives := make([]Directive, 0, len(locs))
	for _, loc := range locs {
		directive := Directive{
			Text:     line[loc[0]:loc[1]],
			Negative: line[loc[2]:loc[3]] == "!",
			start:    loc[0],
			end:      loc[1],
		}
		body := strings.TrimSpace(line[loc[4]:loc[5]])
		separator := "&"
		switch {
		case loc[6] >= 0:
			directive.Grouping = GroupSingle
		case loc[8] >= 0:
			directive.Grouping = GroupAny
			separator = "|"
		default:
			directive.Grouping = GroupAll
		}
		for _, part := range strings.Split(body, separator) {
			directive.Clauses = append(directive.Clauses, parseClause(part))
		}
		directives = append(directives, directive)
	}
	return directives
}

func parseClause(text string) Clause {
	m := clausePattern.FindStringSubmatch(text)
	if m == nil {
		return Clause{}
	}
	symbol := strings.TrimSpace(m[1])
	if symbol == "" {
		return Clause{}
	}
	clause := Clause{Symbol: symbol, Valid: true}
	if strings.Contains(text, "=") {
		clause.Equality = true
		clause.Value = strings.TrimSpace(m[2])
	}
	return clause
}

// Evaluate evaluates every directive on line against params. children
// reports whether the node has children with output for the template being
// rendered; it answers presence tests of the children symbol.
func Evaluate(line string, params Params, children bool) Evaluation {
	return evaluate(line, params, func() bool { return children })
}

// evaluate is Evaluate with a lazily computed children flag. children is
// only called when a directive tests the children symbol.
func evaluate(line string, params Params, children func() bool) Evaluation {
	directives := ParseDirectives(line)
	ev := Evaluation{Directives: directives, Renderable: true}
	for _, directive := range directives {
		if !directive.permits(params, children) {
			ev.Renderable = false
		}
	}
	return ev
}

// permits reports whether the directive allows its line to render.
func (d Directive) permits(params Params, children func() bool) bool {
	if d.Negative {
		for _, clause := range d.Clauses {
			if clause.holds(params, children) {
				return false
			}
		}
		return true
	}
	if d.Grouping == GroupAny {
		for _, clause := range d.Clauses {
			if clause.holds(params, children) {
				return true
			}
		}
		return false
	}
	for _, clause := range d.Clauses {
		if !clause.holds(params, children) {
			return false
		}
	}
	return true
}

func (c Clause) holds(params Params, children func() bool) bool {
	if !c.Valid {
		return false
	}
	if c.Symbol == ChildrenSymbol {
		return !c.Equality && children()
	}
	value, ok := params.Lookup(c.Symbol)
	if !c.Equality {
		return ok
	}
	return ok && value == c.Value
}

// StripDirectives removes the evaluated directives from line.
func StripDirectives(line string, ev Evaluation) string {
	if len(ev.Directives) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	last := 0
	for _, directive := range ev.Directives {
		b.WriteString(line[last:directive.start])
		last = directive.end
	}
	b.WriteString(line[last:])
	return b.String()
}
