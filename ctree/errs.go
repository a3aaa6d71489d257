package ctree

import "errors"

// Every failed operation in this package wraps exactly one of these
// sentinels, so callers can classify failures with errors.Is. A failed
// operation never leaves partial state behind.
var (
	// ErrCrossDocument reports an operation mixing nodes owned by
	// different Documents.
	ErrCrossDocument = errors.New("node belongs to a different document")

	// ErrParented reports an insert of a node that already has a parent.
	ErrParented = errors.New("node already has a parent")

	// ErrCycle reports an insert that would make a node its own
	// ancestor or descendant.
	ErrCycle = errors.New("operation would create a cycle")

	// ErrSchema reports an illegal (parent kind, child kind) edge or an
	// illegal ordering inside a Choose.
	ErrSchema = errors.New("schema violation")

	// ErrNotParented reports a removal of a node that has no parent.
	ErrNotParented = errors.New("node has no parent")

	// ErrWrongParent reports a removal (or a positional reference) using
	// a container that is not the node's actual parent.
	ErrWrongParent = errors.New("node has a different parent")

	// ErrReservedName reports a property name colliding with a reserved
	// or structural identifier.
	ErrReservedName = errors.New("name is reserved")

	// ErrBadName reports a name that is not a well-formed identifier.
	ErrBadName = errors.New("malformed name")

	// ErrTooDeep reports a structural operation that would push the tree
	// past the nesting depth limit.
	ErrTooDeep = errors.New("nesting too deep")
)
