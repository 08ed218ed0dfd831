package sqlexpr

import "github.com/quarrydb/quarry/internal/sqltype"

// UnresolvedAttribute is a column reference as produced by parsing: a raw
// name at a source location, not yet bound to any field. It mints an id at
// construction so structural comparisons over trees that still contain
// unresolved nodes work, but the id - like the name, type, and attribute
// view - is exposed only after resolution replaces this node with a
// FieldAttribute.
type UnresolvedAttribute struct {
	loc      Location
	ref      string
	children []Expression
	id       ExpressionId
}

// NewUnresolvedAttribute creates an unresolved reference to ref.
func NewUnresolvedAttribute(ids IDAllocator, loc Location, ref string, children ...Expression) *UnresolvedAttribute {
	return &UnresolvedAttribute{
		loc:      loc,
		ref:      ref,
		children: children,
		id:       ids.NextID(),
	}
}

func (u *UnresolvedAttribute) exprNode() {}

func (u *UnresolvedAttribute) Location() Location     { return u.loc }
func (u *UnresolvedAttribute) Children() []Expression { return u.children }

// Resolved reports false: this node is awaiting analyzer binding.
func (u *UnresolvedAttribute) Resolved() bool { return false }

// Ref returns the raw reference text as written in the query. This is
// diagnostic input for the binder, not the resolved name.
func (u *UnresolvedAttribute) Ref() string { return u.ref }

// UnresolvedMessage is the failure text a binder should surface when no
// field matches this reference.
func (u *UnresolvedAttribute) UnresolvedMessage() string {
	return "unknown column [" + u.ref + "]"
}

// Name fails: the resolved name exists only after binding.
func (u *UnresolvedAttribute) Name() (string, error) {
	return "", newUnresolvedError("name", u)
}

// ID fails: identity is exposed only on the resolved replacement.
func (u *UnresolvedAttribute) ID() (ExpressionId, error) {
	return "", newUnresolvedError("id", u)
}

// DataType fails: an unresolved reference has no type.
func (u *UnresolvedAttribute) DataType() (sqltype.DataType, error) {
	return sqltype.Unsupported, newUnresolvedError("data type", u)
}

// ToAttribute fails: only resolved references have an attribute view.
func (u *UnresolvedAttribute) ToAttribute() (*FieldAttribute, error) {
	return nil, newUnresolvedError("attribute", u)
}

func (u *UnresolvedAttribute) String() string {
	return "?" + u.ref
}
