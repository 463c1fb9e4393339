// Package snippet renders code snippet templates for nodes of a design
// document tree.
//
// A template is line oriented. Each line may carry conditional directives,
// symbols, and escapes:
//
//	<Button
//	  {{?property.state=disabled}}disabled
//	  {{!property.size=medium}}size="{{property.size}}"
//	  {{?property.iconEnd.b=true}}iconEnd={<{{property.iconEnd.i|pascal}} />}
//	>
//	  {{figma.children}}
//	</Button>
//
// # Directives
//
// {{?clause}} keeps the line when the clause holds, {{!clause}} drops it
// when the clause holds. A clause is a presence test (name) or an equality
// test (name=value). Clauses combine with "&" (all) or "|" (any); a negative
// directive drops the line when any of its clauses holds. Directives are
// removed from the output.
//
// # Symbols
//
// {{name}} and {{name|filter}} are replaced by parameter values passed
// through a filter (see package filter). A line referencing an unknown
// parameter is dropped, which is how templates express optional content.
// Prefixing a symbol with a backslash (\{{literal}}) escapes it.
//
// # Children
//
// {{figma.children}} expands into the rendered output of the node's
// children, using the child templates whose title and language match the
// template being rendered. Expansion is bounded by MaxDepth.
//
// # Line folding
//
// A trailing backslash joins a line with the next one:
//
//	\   joined with a single space
//	\\  joined with nothing
//
// and a line beginning with a backslash after a trailing backslash is
// joined with nothing.
//
// # Template discovery
//
// Resolver walks a node's inheritance chain (instance, main component,
// variant set) and collects node-local templates plus component and type
// templates from a Registry, skipping duplicate content.
//
// # Example
//
//	renderer := snippet.NewRenderer(host, templates)
//	rendering, err := renderer.RenderNode(ctx, node, params)
//	for _, result := range rendering.Results {
//	    fmt.Println(result.Title, result.Code)
//	}
package snippet
