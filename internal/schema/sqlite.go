package schema

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// LoadSQLite reads a table's declared column types from a SQLite database
// and maps them onto the data type catalog. Declarations that map to nothing
// become Unsupported rather than a lossy guess; binding against such a field
// still works, conversion does not.
func LoadSQLite(path, table string) (*Schema, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT name, type FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("read table info for %s: %w", table, err)
	}
	defer rows.Close()

	var fields []Field
	for rows.Next() {
		var name, decl string
		if err := rows.Scan(&name, &decl); err != nil {
			return nil, fmt.Errorf("scan table info for %s: %w", table, err)
		}
		fields = append(fields, Field{Name: name, Type: declaredType(decl)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read table info for %s: %w", table, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("unknown table [%s]", table)
	}
	return New(fields...), nil
}

// declaredType maps a SQLite column declaration onto a DataType. The rules
// follow SQLite's own affinity matching: substring checks on the upper-cased
// declaration, most specific first.
func declaredType(decl string) sqltype.DataType {
	d := strings.ToUpper(decl)
	switch {
	case strings.Contains(d, "TINYINT"):
		return sqltype.Byte
	case strings.Contains(d, "SMALLINT"):
		return sqltype.Short
	case strings.Contains(d, "MEDIUMINT"):
		return sqltype.Integer
	case strings.Contains(d, "INT"):
		// SQLite integers are 64-bit regardless of the declared width
		return sqltype.Long
	case strings.Contains(d, "BOOL"):
		return sqltype.Boolean
	case strings.Contains(d, "DATE"), strings.Contains(d, "TIME"):
		return sqltype.Date
	case strings.Contains(d, "CHAR"):
		return sqltype.Keyword
	case strings.Contains(d, "TEXT"), strings.Contains(d, "CLOB"):
		return sqltype.Text
	case strings.Contains(d, "REAL"), strings.Contains(d, "FLOA"), strings.Contains(d, "DOUB"):
		// SQLite stores all rationals as 8-byte IEEE floats
		return sqltype.Double
	default:
		return sqltype.Unsupported
	}
}
