package sqlexpr

import (
	"errors"
	"fmt"
)

// UnresolvedError reports that a resolved-only property was read on a node
// the analyzer has not resolved. This is a defect in the caller - a node was
// consumed before (or without) resolution - not a query error, and it never
// yields a default value.
type UnresolvedError struct {
	// Property is the accessor that was called ("name", "id", ...).
	Property string

	// Node is the string form of the offending node.
	Node string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("invalid call to %s on an unresolved object %s", e.Property, e.Node)
}

// IsUnresolved returns true if the error reports unresolved-property access.
// Uses errors.As to handle wrapped errors.
func IsUnresolved(err error) bool {
	var ue *UnresolvedError
	return errors.As(err, &ue)
}

func newUnresolvedError(property string, node fmt.Stringer) *UnresolvedError {
	return &UnresolvedError{Property: property, Node: node.String()}
}
