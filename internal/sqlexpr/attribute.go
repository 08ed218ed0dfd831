package sqlexpr

import (
	"fmt"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// FieldAttribute is a column reference bound to a concrete field: the
// terminal state of resolution. It is produced by substitution - the
// analyzer replaces the UnresolvedAttribute wholesale - and is immutable
// from then on; repeated accessor calls return the same values.
type FieldAttribute struct {
	loc       Location
	qualifier string
	name      string
	typ       sqltype.DataType
	id        ExpressionId
}

// NewFieldAttribute creates a resolved attribute for the field name of the
// given type. qualifier is the owning relation and may be empty.
func NewFieldAttribute(ids IDAllocator, loc Location, qualifier, name string, typ sqltype.DataType) *FieldAttribute {
	return &FieldAttribute{
		loc:       loc,
		qualifier: qualifier,
		name:      name,
		typ:       typ,
		id:        ids.NextID(),
	}
}

func (a *FieldAttribute) exprNode() {}

func (a *FieldAttribute) Location() Location     { return a.loc }
func (a *FieldAttribute) Children() []Expression { return nil }
func (a *FieldAttribute) Resolved() bool         { return true }

// Name returns the bound field name.
func (a *FieldAttribute) Name() (string, error) { return a.name, nil }

// ID returns the attribute's identity token.
func (a *FieldAttribute) ID() (ExpressionId, error) { return a.id, nil }

// DataType returns the field's concrete type.
func (a *FieldAttribute) DataType() (sqltype.DataType, error) { return a.typ, nil }

// ToAttribute returns the attribute view; for a FieldAttribute that is the
// node itself.
func (a *FieldAttribute) ToAttribute() (*FieldAttribute, error) { return a, nil }

// Qualifier returns the owning relation's name, or "" when unqualified.
func (a *FieldAttribute) Qualifier() string { return a.qualifier }

// QualifiedName returns qualifier.name, or just the name when unqualified.
func (a *FieldAttribute) QualifiedName() string {
	if a.qualifier == "" {
		return a.name
	}
	return a.qualifier + "." + a.name
}

func (a *FieldAttribute) String() string {
	return fmt.Sprintf("%s{f}#%s", a.QualifiedName(), a.id)
}
