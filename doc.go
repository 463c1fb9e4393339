// Package snippetkit renders code snippets for nodes of a design document.
//
// A snippet template is plain text with a small markup language: symbols
// such as {{node.name|pascal}} are replaced by node parameters, line
// directives such as {{?property.state=disabled}} keep or drop a line, and
// {{figma.children}} splices in the rendered children of the node. Each
// subpackage can be used independently:
//
//   - filter: the case transforms applied to parameter values
//   - snippet: the template engine, template resolution and recursion
//   - registry: global templates keyed by component key or node type
//   - store: SQLite storage for templates attached to a single node
//   - tree: an in-memory document snapshot that hosts rendering
//   - codegen: turns a node into the list of results a code panel shows
//
// # Quick Start
//
// Rendering a node of a snapshot:
//
//	import (
//	    "github.com/randalmurphal/snippetkit/codegen"
//	    "github.com/randalmurphal/snippetkit/registry"
//	    "github.com/randalmurphal/snippetkit/snippet"
//	    "github.com/randalmurphal/snippetkit/tree"
//	)
//
//	doc, _ := tree.Load("document.yaml")
//	templates, _ := registry.Load("templates.json")
//	renderer := snippet.NewRenderer(doc, templates)
//	node, _ := doc.Find("2:1")
//	results := codegen.New(renderer, doc).Generate(ctx, node)
//
// The snippet command wraps the same flow for the terminal:
//
//	snippet render --tree document.yaml --templates templates.json --node 2:1
//
// # Design Philosophy
//
//   - Templates that cannot render drop lines instead of failing
//   - Only collaborator failures are errors
//   - Each package usable independently
//   - Sensible defaults with functional options
package snippetkit
