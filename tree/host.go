package tree

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/randalmurphal/snippetkit/filter"
	"github.com/randalmurphal/snippetkit/snippet"
)

var (
	_ snippet.Host        = (*Document)(nil)
	_ snippet.SVGExporter = (*Document)(nil)
)

// Params returns the parameter map of node. Supplied values win; a key
// with only a raw value gets a normalized one derived from it. The node.*
// parameters, and for instances the component.* parameters, are added
// when absent.
func (d *Document) Params(_ context.Context, node snippet.Node) (snippet.Params, error) {
	n, err := d.node(node)
	if err != nil {
		return snippet.Params{}, err
	}

	values := make(map[string]string, len(n.values)+len(n.raw)+7)
	raw := make(map[string]string, len(values))
	for key, value := range n.values {
		values[key] = value
	}
	for key, value := range n.raw {
		raw[key] = value
		if _, ok := values[key]; !ok {
			values[key] = filter.Normalize(value)
		}
	}

	fill := func(key, value string) {
		if _, ok := values[key]; ok {
			return
		}
		values[key] = filter.Normalize(value)
		raw[key] = value
	}
	verbatim := func(key, value string) {
		if _, ok := values[key]; ok {
			return
		}
		values[key] = value
		raw[key] = value
	}
	fill("node.name", n.name)
	fill("node.type", string(n.typ))
	if n.key != "" {
		verbatim("node.key", n.key)
	}
	if n.typ.CanHaveChildren() {
		fill("node.children", strconv.Itoa(len(n.visibleChildren())))
	}
	if component := n.component(); component != nil {
		fill("component.name", component.name)
		fill("component.type", string(component.typ))
		if component.key != "" {
			verbatim("component.key", component.key)
		}
	}

	return snippet.NewParams(values, raw), nil
}

// Templates returns the node-local templates of node. With a store
// attached, stored templates win over inline ones.
func (d *Document) Templates(ctx context.Context, node snippet.Node) ([]snippet.Definition, error) {
	n, err := d.node(node)
	if err != nil {
		return nil, err
	}
	if d.source != nil {
		defs, err := d.source.Get(ctx, n.id)
		if err != nil {
			return nil, fmt.Errorf("stored templates for node %s: %w", n.id, err)
		}
		if len(defs) > 0 {
			d.logger.DebugContext(ctx, "using stored templates",
				slog.String("node", n.id),
				slog.Int("count", len(defs)))
			return defs, nil
		}
	}
	return slices.Clone(n.templates), nil
}

// Children returns the visible children of node in document order.
func (d *Document) Children(ctx context.Context, node snippet.Node) ([]snippet.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := d.node(node)
	if err != nil {
		return nil, err
	}
	visible := n.visibleChildren()
	out := make([]snippet.Node, 0, len(visible))
	for _, child := range visible {
		out = append(out, child)
	}
	return out, nil
}

// ExportSVG returns the SVG recorded for node. A node without one reports
// snippet.ErrUnsupported.
func (d *Document) ExportSVG(_ context.Context, node snippet.Node) (string, error) {
	n, err := d.node(node)
	if err != nil {
		return "", err
	}
	if n.svg == "" {
		return "", fmt.Errorf("%w: node %s has no svg", snippet.ErrUnsupported, n.id)
	}
	return n.svg, nil
}
