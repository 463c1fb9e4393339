package tree

import "errors"

var (
	// ErrNodeNotFound indicates a node id or node that is not part of the
	// document.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateID indicates two nodes with the same id.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrInvalidDocument indicates a snapshot with a bad shape.
	ErrInvalidDocument = errors.New("invalid document")
)
