package sqlexpr

import (
	"fmt"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// Location identifies a position in the original query text. The zero value
// means the position is unknown.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Expression is the capability shared by both resolution states: a source
// location, child sub-expressions, and whether the node has been resolved.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and keeps
// type switches over the node set exhaustive.
type Expression interface {
	Location() Location
	Children() []Expression
	Resolved() bool

	exprNode() // Marker method - seals interface to this package
}

// NamedExpression is a reference that carries, once resolved, a concrete
// name, identity, and data type. The accessors are defined only for the
// resolved state: on an unresolved node each one fails with an
// UnresolvedError instead of returning a placeholder.
type NamedExpression interface {
	Expression

	Name() (string, error)
	ID() (ExpressionId, error)
	DataType() (sqltype.DataType, error)
	ToAttribute() (*FieldAttribute, error)
}

// Unresolvable marks nodes still awaiting analyzer binding and carries the
// message a failed binding should surface.
type Unresolvable interface {
	Expression
	UnresolvedMessage() string
}

// Literal is a constant expression with a concrete type, used for folded
// values and cast arguments. Always resolved.
type Literal struct {
	loc   Location
	value any
	typ   sqltype.DataType
}

// NewLiteral creates a literal of the given type. The value's runtime
// representation must already match the type; use sqltype.Convert first when
// it may not.
func NewLiteral(loc Location, value any, typ sqltype.DataType) *Literal {
	return &Literal{loc: loc, value: value, typ: typ}
}

func (l *Literal) exprNode() {}

func (l *Literal) Location() Location     { return l.loc }
func (l *Literal) Children() []Expression { return nil }
func (l *Literal) Resolved() bool         { return true }

// Value returns the constant value.
func (l *Literal) Value() any { return l.value }

// DataType returns the literal's concrete type.
func (l *Literal) DataType() sqltype.DataType { return l.typ }

func (l *Literal) String() string {
	return fmt.Sprintf("%v", l.value)
}
