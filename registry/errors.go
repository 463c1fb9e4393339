package registry

import "errors"

var (
	// ErrInvalidTemplates indicates a registry document with a bad shape or
	// an invalid definition.
	ErrInvalidTemplates = errors.New("invalid templates")

	// ErrUnknownFormat indicates a file extension with no known encoding.
	ErrUnknownFormat = errors.New("unknown format")
)
