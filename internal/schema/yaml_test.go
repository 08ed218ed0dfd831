package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/sqltype"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeSchemaFile(t, `
fields:
  price: double
  name: keyword
  released: date
  in_stock: boolean
`)

	s, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	f, ok := s.Lookup("price")
	require.True(t, ok)
	assert.Equal(t, sqltype.Double, f.Type)

	// fields come back ordered by name
	fields := s.Fields()
	assert.Equal(t, "in_stock", fields[0].Name)
	assert.Equal(t, "name", fields[1].Name)
	assert.Equal(t, "price", fields[2].Name)
	assert.Equal(t, "released", fields[3].Name)
}

func TestLoadYAMLUnknownType(t *testing.T) {
	path := writeSchemaFile(t, `
fields:
  price: decimal
`)

	_, err := LoadYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "price": unknown data type [decimal]`)
}

func TestLoadYAMLEmpty(t *testing.T) {
	path := writeSchemaFile(t, "fields: {}\n")

	_, err := LoadYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no fields")
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
