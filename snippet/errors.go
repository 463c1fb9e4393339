package snippet

import "errors"

// Sentinel errors for snippet operations.
var (
	// ErrInvalidDefinition is returned when a template definition has no
	// title or an unknown language.
	ErrInvalidDefinition = errors.New("invalid template definition")

	// ErrUnsupported is returned by collaborators that cannot serve a
	// request for a node, such as an SVG export of a node without artwork.
	// The renderer treats it as an unresolved symbol.
	ErrUnsupported = errors.New("unsupported for node")

	// ErrNilNode is returned when rendering is requested without a node.
	ErrNilNode = errors.New("node is nil")
)
