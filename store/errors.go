package store

import "errors"

// ErrInvalidNodeID indicates an empty node id.
var ErrInvalidNodeID = errors.New("invalid node id")
