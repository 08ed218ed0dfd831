package sqltype

import "strings"

// DataType enumerates the primitive data types of the query layer.
//
// The set is closed: no DataType value exists outside the constants below,
// and every member is an immutable, process-wide constant. Classification
// (integer/rational/string/primitive) and the numeric precision rank live in
// a per-member record resolved by exhaustive matching, so adding a member
// without classifying it fails loudly instead of defaulting.
type DataType uint8

const (
	// Unsupported is the zero value: a type the query layer cannot work
	// with (unknown runtime values, unmappable storage columns).
	Unsupported DataType = iota
	Null
	Boolean
	Byte
	Short
	Integer
	Long
	Float
	Double
	Keyword
	Text
	Date
	Object
	Nested
)

// typeInfo is the read-only classification record backing a DataType.
// size ranks precision among numeric types of the same family; it carries
// no meaning for non-numeric members.
type typeInfo struct {
	name      string
	size      int
	integer   bool
	rational  bool
	str       bool
	primitive bool
}

func (t DataType) info() typeInfo {
	switch t {
	case Unsupported:
		return typeInfo{name: "unsupported"}
	case Null:
		return typeInfo{name: "null", primitive: true}
	case Boolean:
		return typeInfo{name: "boolean", size: 1, primitive: true}
	case Byte:
		return typeInfo{name: "byte", size: 1, integer: true, primitive: true}
	case Short:
		return typeInfo{name: "short", size: 2, integer: true, primitive: true}
	case Integer:
		return typeInfo{name: "integer", size: 4, integer: true, primitive: true}
	case Long:
		return typeInfo{name: "long", size: 8, integer: true, primitive: true}
	case Float:
		return typeInfo{name: "float", size: 4, rational: true, primitive: true}
	case Double:
		return typeInfo{name: "double", size: 8, rational: true, primitive: true}
	case Keyword:
		return typeInfo{name: "keyword", str: true, primitive: true}
	case Text:
		return typeInfo{name: "text", str: true, primitive: true}
	case Date:
		return typeInfo{name: "date", size: 8, primitive: true}
	case Object:
		return typeInfo{name: "object"}
	case Nested:
		return typeInfo{name: "nested"}
	}
	panic("unclassified data type")
}

// String returns the lower-case catalog name of the type. This is the name
// used in error messages, schema files, and CLI output.
func (t DataType) String() string { return t.info().name }

// Size is the precision rank used for promotion among numeric types of the
// same family; the wider size wins. Zero for non-numeric types.
func (t DataType) Size() int { return t.info().size }

// IsInteger reports whether the type belongs to the integer numeric family.
func (t DataType) IsInteger() bool { return t.info().integer }

// IsRational reports whether the type belongs to the floating-point family.
// A type is never both integer and rational.
func (t DataType) IsRational() bool { return t.info().rational }

// IsNumeric reports whether the type is integer or rational.
func (t DataType) IsNumeric() bool {
	i := t.info()
	return i.integer || i.rational
}

// IsString reports whether the type is one of the string kinds.
func (t DataType) IsString() bool { return t.info().str }

// IsPrimitive reports whether values of the type can flow through the
// conversion catalog. Structured and unsupported types are not primitive.
func (t DataType) IsPrimitive() bool { return t.info().primitive }

// Types lists every DataType in declaration order.
func Types() []DataType {
	return []DataType{
		Unsupported, Null, Boolean, Byte, Short, Integer, Long,
		Float, Double, Keyword, Text, Date, Object, Nested,
	}
}

// Parse looks a DataType up by its catalog name, case-insensitively.
func Parse(name string) (DataType, bool) {
	name = strings.ToLower(name)
	for _, t := range Types() {
		if t.String() == name {
			return t, true
		}
	}
	return Unsupported, false
}

// CommonType returns the type two operands must be coerced to before they
// can be compared or combined. Rules, in order:
//
//   - identical types need no coercion
//   - Null unifies with anything
//   - both numeric: within a family the larger size wins; a rational side
//     wins over an integer side
//   - a string side is coerced toward a numeric peer, never the reverse
//
// Anything else has no common type and the second return is false; callers
// must treat the operands as incomparable rather than pick a default.
func CommonType(left, right DataType) (DataType, bool) {
	if left == right {
		return left, true
	}
	if left == Null {
		return right, true
	}
	if right == Null {
		return left, true
	}
	if left.IsNumeric() && right.IsNumeric() {
		if left.IsInteger() {
			// promote the highest int
			if right.IsInteger() {
				return widest(left, right), true
			}
			// promote the rational
			return right, true
		}
		// try the other side
		if right.IsInteger() {
			return left, true
		}
		// promote the highest rational
		return widest(left, right), true
	}
	if left.IsString() && right.IsNumeric() {
		return right, true
	}
	if right.IsString() && left.IsNumeric() {
		return left, true
	}
	// none found
	return Unsupported, false
}

// widest keeps the right operand on a size tie. The tie-break is arbitrary
// but fixed; changing it would change plan output for existing queries.
func widest(left, right DataType) DataType {
	if left.Size() > right.Size() {
		return left
	}
	return right
}

// AsInteger maps a numeric type to its integer-family counterpart: integer
// types map to themselves, rational types to Long. Non-numeric types pass
// through unchanged.
func AsInteger(t DataType) DataType {
	if !t.IsNumeric() {
		return t
	}
	if t.IsInteger() {
		return t
	}
	return Long
}
