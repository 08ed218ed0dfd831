package schema

import (
	"strings"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// Field pairs a column name with its data type.
type Field struct {
	Name string
	Type sqltype.DataType
}

// Schema is an ordered field catalog for a single relation. Field names are
// matched exactly; Suggest offers case-insensitive near misses for
// diagnostics.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New creates a schema over the given fields, preserving their order.
// A later field with a duplicate name shadows an earlier one.
func New(fields ...Field) *Schema {
	s := &Schema{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// Fields returns the catalog's fields in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Lookup finds a field by exact name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Suggest returns the names of fields that match name ignoring case,
// in declaration order. Used to enrich binding failures.
func (s *Schema) Suggest(name string) []string {
	var out []string
	for _, f := range s.fields {
		if strings.EqualFold(f.Name, name) {
			out = append(out, f.Name)
		}
	}
	return out
}
