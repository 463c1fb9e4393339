package snippet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Renderer renders templates for nodes, expanding children recursively.
// A Renderer holds no per-render state and is safe for concurrent use if
// its Host and Registry are.
type Renderer struct {
	host     Host
	resolver *Resolver
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxDepth sets the children expansion ceiling. Defaults to MaxDepth.
// Zero disables children expansion.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		r.maxDepth = max(depth, 0)
	}
}

// NewRenderer creates a Renderer reading node data from host and shared
// templates from registry. registry may be nil.
func NewRenderer(host Host, registry Registry, opts ...Option) *Renderer {
	r := &Renderer{
		host:     host,
		resolver: NewResolver(host, registry),
		logger:   slog.Default(),
		maxDepth: MaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolver returns the resolver the renderer uses to discover templates.
func (r *Renderer) Resolver() *Resolver {
	return r.resolver
}

// RenderNode renders every template that applies to node using params.
// A node without templates yields an empty Rendering. Errors come only
// from the Host.
func (r *Renderer) RenderNode(ctx context.Context, node Node, params Params) (*Rendering, error) {
	links, err := r.resolver.Resolve(ctx, node, nil)
	if err != nil {
		return nil, err
	}
	out := &Rendering{}
	for _, link := range links {
		rendering, err := r.Render(ctx, node, link.Definitions, params, link.Node.Type(), Recursion{})
		if err != nil {
			return nil, err
		}
		out.Append(rendering)
	}
	return out, nil
}

// Render renders defs against params. node supplies children for
// {{figma.children}} and may be nil, in which case there are none. tag is
// the type of the node the templates came from and appears in the titles
// of the raw template results.
func (r *Renderer) Render(ctx context.Context, node Node, defs []Definition, params Params, tag NodeType, rc Recursion) (*Rendering, error) {
	out := &Rendering{
		Results:   make([]Result, 0, len(defs)),
		Templates: make([]Result, 0, len(defs)),
	}
	for _, def := range defs {
		p := &pass{
			renderer: r,
			ctx:      ctx,
			node:     node,
			def:      def,
			params:   params,
			rc:       rc,
		}
		code, err := p.render()
		if err != nil {
			return nil, err
		}
		out.Results = append(out.Results, Result{
			Title:    def.Title,
			Language: def.Language,
			Code:     Indent(code, rc.Indent),
		})
		out.Templates = append(out.Templates, Result{
			Title:    rawTemplateTitle(def.Title, tag),
			Language: LanguagePlaintext,
			Code:     def.Code,
		})
	}
	return out, nil
}

// pass renders one definition for one node.
type pass struct {
	renderer *Renderer
	ctx      context.Context
	node     Node
	def      Definition
	params   Params
	rc       Recursion

	children     []string
	childrenDone bool
	svg          string
	svgOK        bool
	svgDone      bool
	err          error
}

func (p *pass) render() (string, error) {
	lines := strings.Split(p.def.Code, "\n")
	code := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered, ok := p.line(line)
		if p.err != nil {
			return "", p.err
		}
		if ok {
			code = append(code, rendered)
		}
	}
	return Fold(strings.Join(code, "\n")), nil
}

// line renders a single template line. It reports false when the line is
// dropped.
func (p *pass) line(line string) (string, bool) {
	ev := evaluate(line, p.params, func() bool { return len(p.childOutputs()) > 0 })
	if p.err != nil {
		return "", false
	}
	line = StripDirectives(line, ev)
	if !ev.Renderable {
		return "", false
	}

	indent := leadingWhitespace(line)
	resolved, spliced := true, false
	line = replaceSymbols(line, FindSymbols(line), func(symbol Symbol) (string, bool) {
		if !resolved {
			return "", false
		}
		if value, ok := lookupSymbol(symbol, p.params); ok {
			return value, true
		}
		switch symbol.Name {
		case ChildrenSymbol:
			if outputs := p.childOutputs(); len(outputs) > 0 {
				spliced = true
				return Indent(strings.Join(outputs, "\n"), indent), true
			}
		case SVGSymbol:
			if svg, ok := p.exportSVG(); ok {
				return svg, true
			}
		}
		resolved = false
		return "", false
	})
	if p.err != nil {
		return "", false
	}
	if !resolved {
		p.renderer.logger.DebugContext(p.ctx, "snippet line dropped",
			slog.String("template", p.def.Title),
			slog.String("reason", "unresolved symbol"),
			slog.Int("depth", p.rc.Depth))
		return "", false
	}
	if spliced {
		line = strings.TrimPrefix(line, indent)
	}
	return Unescape(line), true
}

// childOutputs renders the node's children once per pass and returns their
// non-empty outputs in child order. At the recursion ceiling there are none.
func (p *pass) childOutputs() []string {
	if p.childrenDone {
		return p.children
	}
	p.childrenDone = true
	if p.node == nil {
		return nil
	}
	if p.rc.Depth >= p.renderer.maxDepth {
		p.renderer.logger.DebugContext(p.ctx, "children expansion stopped at recursion ceiling",
			slog.String("template", p.def.Title),
			slog.String("node", p.node.ID()),
			slog.Int("depth", p.rc.Depth))
		return nil
	}
	p.children, p.err = p.renderer.renderChildren(p.ctx, p.node, p.rc.Child(p.def.Match()))
	return p.children
}

// exportSVG asks the host for the node's SVG once per pass.
func (p *pass) exportSVG() (string, bool) {
	if p.svgDone {
		return p.svg, p.svgOK
	}
	p.svgDone = true
	exporter, ok := p.renderer.host.(SVGExporter)
	if !ok || p.node == nil {
		return "", false
	}
	svg, err := exporter.ExportSVG(p.ctx, p.node)
	switch {
	case errors.Is(err, ErrUnsupported):
		return "", false
	case err != nil:
		p.err = fmt.Errorf("svg for node %s: %w", p.node.ID(), err)
		return "", false
	}
	p.svg, p.svgOK = svg, true
	return svg, true
}
