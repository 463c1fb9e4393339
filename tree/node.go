package tree

import (
	"github.com/randalmurphal/snippetkit/snippet"
)

// Node is a node of a Document.
type Node struct {
	id        string
	typ       snippet.NodeType
	name      string
	key       string
	visible   bool
	values    map[string]string
	raw       map[string]string
	templates []snippet.Definition
	svg       string

	parent   *Node
	main     *Node
	children []*Node
}

var _ snippet.Node = (*Node)(nil)

func (n *Node) ID() string             { return n.id }
func (n *Node) Type() snippet.NodeType { return n.typ }
func (n *Node) Key() string            { return n.key }
func (n *Node) Name() string           { return n.name }
func (n *Node) Visible() bool          { return n.visible }

// Parent returns the containing node, or nil for a root.
func (n *Node) Parent() snippet.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// MainComponent returns the component an instance was created from, or
// nil.
func (n *Node) MainComponent() snippet.Node {
	if n.main == nil {
		return nil
	}
	return n.main
}

// Children returns every child in document order, hidden ones included.
func (n *Node) Children() []*Node {
	return n.children
}

// visibleChildren returns the children that render.
func (n *Node) visibleChildren() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		if child.visible {
			out = append(out, child)
		}
	}
	return out
}

// component returns the node whose identity an instance presents: the
// variant set of its main component, or the main component itself.
func (n *Node) component() *Node {
	if n.main == nil {
		return nil
	}
	if set := n.main.parent; set != nil && set.typ.IsVariantSet() {
		return set
	}
	return n.main
}
