package snippet

import (
	"context"
	"errors"
	"sync/atomic"
)

// fakeNode is an in-memory node for tests.
type fakeNode struct {
	id        string
	typ       NodeType
	key       string
	parent    *fakeNode
	main      *fakeNode
	children  []*fakeNode
	templates []Definition
	params    Params
	svg       string
}

func (n *fakeNode) ID() string     { return n.id }
func (n *fakeNode) Type() NodeType { return n.typ }
func (n *fakeNode) Key() string    { return n.key }

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) MainComponent() Node {
	if n.main == nil {
		return nil
	}
	return n.main
}

// add appends children to n and sets their parent.
func (n *fakeNode) add(children ...*fakeNode) *fakeNode {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// fakeHost serves node data straight from fakeNode fields.
type fakeHost struct {
	templatesErr error
	childrenErr  error
	svgErr       error

	childrenCalls atomic.Int32
}

func (h *fakeHost) Params(_ context.Context, node Node) (Params, error) {
	return node.(*fakeNode).params, nil
}

func (h *fakeHost) Templates(_ context.Context, node Node) ([]Definition, error) {
	if h.templatesErr != nil {
		return nil, h.templatesErr
	}
	return node.(*fakeNode).templates, nil
}

func (h *fakeHost) Children(ctx context.Context, node Node) ([]Node, error) {
	h.childrenCalls.Add(1)
	if h.childrenErr != nil {
		return nil, h.childrenErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	children := node.(*fakeNode).children
	out := make([]Node, 0, len(children))
	for _, child := range children {
		out = append(out, child)
	}
	return out, nil
}

func (h *fakeHost) ExportSVG(_ context.Context, node Node) (string, error) {
	if h.svgErr != nil {
		return "", h.svgErr
	}
	svg := node.(*fakeNode).svg
	if svg == "" {
		return "", ErrUnsupported
	}
	return svg, nil
}

// plainHost hides ExportSVG from the renderer.
type plainHost struct {
	host *fakeHost
}

func (h plainHost) Params(ctx context.Context, node Node) (Params, error) {
	return h.host.Params(ctx, node)
}

func (h plainHost) Templates(ctx context.Context, node Node) ([]Definition, error) {
	return h.host.Templates(ctx, node)
}

func (h plainHost) Children(ctx context.Context, node Node) ([]Node, error) {
	return h.host.Children(ctx, node)
}

// fakeRegistry is a map-backed Registry.
type fakeRegistry struct {
	components map[string][]Definition
	types      map[NodeType][]Definition
}

func (r fakeRegistry) ComponentTemplates(key string) []Definition { return r.components[key] }
func (r fakeRegistry) TypeTemplates(t NodeType) []Definition      { return r.types[t] }

var errHost = errors.New("host unavailable")

func plaintext(title, code string) Definition {
	return Definition{Title: title, Language: LanguagePlaintext, Code: code}
}

// named returns params holding node.name, with raw equal to value.
func named(name string) Params {
	return NewParams(map[string]string{"node.name": name}, nil)
}
