package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/randalmurphal/snippetkit/snippet"
	"github.com/randalmurphal/snippetkit/tree"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAuto, "":
		return isTerminal(w), nil
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	}
	return false, fmt.Errorf("invalid --color %q: want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
}

// printer writes results under a header per node.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) node(n *tree.Node) {
	fmt.Fprintf(p.w, "== %s %s (%s) ==\n", n.ID(), n.Name(), n.Type())
}

func (p printer) result(r snippet.Result) {
	fmt.Fprintf(p.w, "-- %s [%s] --\n", r.Title, r.Language)
	code := r.Code
	if p.color {
		var b strings.Builder
		if err := quick.Highlight(&b, code, lexer(r.Language), "terminal256", "monokai"); err == nil {
			code = strings.TrimSuffix(b.String(), "\n")
		}
	}
	fmt.Fprintln(p.w, code)
}

// lexer maps a snippet language to a chroma lexer name. Every language
// name lowercased is a chroma alias.
func lexer(lang snippet.Language) string {
	return strings.ToLower(string(lang))
}
