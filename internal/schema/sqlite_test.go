package schema

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/sqltype"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE products (
		id BIGINT,
		sku VARCHAR(32),
		description TEXT,
		price DOUBLE,
		stock SMALLINT,
		flags TINYINT,
		in_stock BOOLEAN,
		released DATETIME,
		blob_data BLOB
	)`)
	require.NoError(t, err)
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := createTestDB(t)

	s, err := LoadSQLite(path, "products")
	require.NoError(t, err)
	require.Equal(t, 9, s.Len())

	want := map[string]sqltype.DataType{
		"id":          sqltype.Long,
		"sku":         sqltype.Keyword,
		"description": sqltype.Text,
		"price":       sqltype.Double,
		"stock":       sqltype.Short,
		"flags":       sqltype.Byte,
		"in_stock":    sqltype.Boolean,
		"released":    sqltype.Date,
		"blob_data":   sqltype.Unsupported,
	}
	for name, typ := range want {
		f, ok := s.Lookup(name)
		require.True(t, ok, "column %s", name)
		assert.Equal(t, typ, f.Type, "column %s", name)
	}
}

func TestLoadSQLiteUnknownTable(t *testing.T) {
	path := createTestDB(t)

	_, err := LoadSQLite(path, "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table [orders]")
}

func TestDeclaredType(t *testing.T) {
	tests := []struct {
		decl string
		want sqltype.DataType
	}{
		{"INTEGER", sqltype.Long},
		{"int", sqltype.Long},
		{"TINYINT", sqltype.Byte},
		{"SMALLINT", sqltype.Short},
		{"MEDIUMINT", sqltype.Integer},
		{"UNSIGNED BIG INT", sqltype.Long},
		{"CHARACTER(20)", sqltype.Keyword},
		{"VARCHAR(255)", sqltype.Keyword},
		{"TEXT", sqltype.Text},
		{"CLOB", sqltype.Text},
		{"REAL", sqltype.Double},
		{"FLOAT", sqltype.Double},
		{"DOUBLE PRECISION", sqltype.Double},
		{"BOOLEAN", sqltype.Boolean},
		{"DATE", sqltype.Date},
		{"DATETIME", sqltype.Date},
		{"TIMESTAMP", sqltype.Date},
		{"BLOB", sqltype.Unsupported},
		{"", sqltype.Unsupported},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, declaredType(tt.decl), "declaration %q", tt.decl)
	}
}
