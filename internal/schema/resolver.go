package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quarrydb/quarry/internal/sqlexpr"
)

// BindError reports a reference the catalog could not satisfy.
type BindError struct {
	// Ref is the reference text as written in the query.
	Ref string

	// Location is the reference's position in the query text.
	Location sqlexpr.Location

	// Candidates holds case-insensitive near misses, when any exist.
	Candidates []string
}

// Error implements the error interface.
func (e *BindError) Error() string {
	msg := fmt.Sprintf("unknown column [%s]", e.Ref)
	if len(e.Candidates) > 0 {
		msg = fmt.Sprintf("%s, did you mean [%s]?", msg, strings.Join(e.Candidates, ", "))
	}
	return msg
}

// IsBindError returns true if the error reports a failed binding.
// Uses errors.As to handle wrapped errors.
func IsBindError(err error) bool {
	var be *BindError
	return errors.As(err, &be)
}

// Resolver binds unresolved column references against a field catalog. It
// performs one binding step - the seam the analyzer drives for every name in
// a query tree. Binding substitutes a resolved node; it never mutates the
// unresolved one, and a failed binding leaves nothing behind to retry on.
type Resolver struct {
	relation string
	schema   *Schema
	ids      sqlexpr.IDAllocator
}

// NewResolver creates a resolver over the catalog. relation qualifies the
// attributes the resolver produces and may be empty.
func NewResolver(relation string, s *Schema, ids sqlexpr.IDAllocator) *Resolver {
	return &Resolver{relation: relation, schema: s, ids: ids}
}

// Resolve binds one unresolved reference, producing its resolved
// replacement or a BindError naming the reference.
func (r *Resolver) Resolve(u *sqlexpr.UnresolvedAttribute) (*sqlexpr.FieldAttribute, error) {
	f, ok := r.schema.Lookup(u.Ref())
	if !ok {
		return nil, &BindError{
			Ref:        u.Ref(),
			Location:   u.Location(),
			Candidates: r.schema.Suggest(u.Ref()),
		}
	}
	return sqlexpr.NewFieldAttribute(r.ids, u.Location(), r.relation, f.Name, f.Type), nil
}
