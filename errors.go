package idtree

import "errors"

var (
	// ErrInvalidTree signals a violated structural invariant, reported by Check.
	ErrInvalidTree = errors.New("idtree: structural invariant violated")
	// ErrIllegalArguments signals illegal arguments to an API call.
	ErrIllegalArguments = errors.New("idtree: illegal arguments")
)
