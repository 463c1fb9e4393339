package snippet

import "context"

// NodeType tags the kind of a design node.
type NodeType string

// Node types. TypeDefault is the wildcard key for type templates.
const (
	TypeFrame        NodeType = "FRAME"
	TypeGroup        NodeType = "GROUP"
	TypeSection      NodeType = "SECTION"
	TypeText         NodeType = "TEXT"
	TypeRectangle    NodeType = "RECTANGLE"
	TypeEllipse      NodeType = "ELLIPSE"
	TypeVector       NodeType = "VECTOR"
	TypeComponent    NodeType = "COMPONENT"
	TypeComponentSet NodeType = "COMPONENT_SET"
	TypeInstance     NodeType = "INSTANCE"
	TypeDefault      NodeType = "DEFAULT"
)

// HasComponentIdentity reports whether nodes of this type carry a stable
// component key.
func (t NodeType) HasComponentIdentity() bool {
	return t == TypeComponent || t == TypeComponentSet
}

// IsVariantSet reports whether nodes of this type own variants.
func (t NodeType) IsVariantSet() bool {
	return t == TypeComponentSet
}

// IsInstance reports whether nodes of this type reference a main component.
func (t NodeType) IsInstance() bool {
	return t == TypeInstance
}

// CanHaveChildren reports whether nodes of this type may contain other
// nodes.
func (t NodeType) CanHaveChildren() bool {
	switch t {
	case TypeFrame, TypeGroup, TypeSection, TypeComponent, TypeComponentSet, TypeInstance:
		return true
	}
	return false
}

// Node is a design document node as seen by the engine.
//
// Parent and MainComponent return a nil interface when there is no such
// node.
type Node interface {
	ID() string
	Type() NodeType
	// Key is the stable component identity, empty when the node has none.
	Key() string
	Parent() Node
	// MainComponent is the component an instance was created from.
	MainComponent() Node
}

// Host supplies node data to the engine. Implementations may block on
// document reads and should honor ctx.
type Host interface {
	// Params returns the parameter map for node.
	Params(ctx context.Context, node Node) (Params, error)

	// Templates returns the templates stored on node itself. Malformed
	// stored data must be reported as no templates, not as an error.
	Templates(ctx context.Context, node Node) ([]Definition, error)

	// Children returns the visible children of node in document order.
	Children(ctx context.Context, node Node) ([]Node, error)
}

// SVGExporter is implemented by hosts that can export node artwork for the
// {{figma.svg}} symbol. Returning ErrUnsupported drops the line.
type SVGExporter interface {
	ExportSVG(ctx context.Context, node Node) (string, error)
}

// Registry holds templates shared across nodes.
type Registry interface {
	// ComponentTemplates returns templates registered for a component key.
	ComponentTemplates(key string) []Definition

	// TypeTemplates returns templates registered for a node type.
	TypeTemplates(t NodeType) []Definition
}

// emptyRegistry is used when no registry is configured.
type emptyRegistry struct{}

func (emptyRegistry) ComponentTemplates(string) []Definition { return nil }
func (emptyRegistry) TypeTemplates(NodeType) []Definition    { return nil }
