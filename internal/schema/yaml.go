package schema

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// fileSchema is the on-disk YAML shape:
//
//	fields:
//	  price: double
//	  name: keyword
type fileSchema struct {
	Fields map[string]string `yaml:"fields"`
}

// LoadYAML reads a schema file. Type names are the lower-case catalog names
// accepted by sqltype.Parse. Fields are ordered by name, since YAML mappings
// carry no usable order.
func LoadYAML(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}
	if len(fs.Fields) == 0 {
		return nil, fmt.Errorf("schema file %s declares no fields", path)
	}

	names := make([]string, 0, len(fs.Fields))
	for name := range fs.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		typ, ok := sqltype.Parse(fs.Fields[name])
		if !ok {
			return nil, fmt.Errorf("field %q: unknown data type [%s]", name, fs.Fields[name])
		}
		fields = append(fields, Field{Name: name, Type: typ})
	}
	return New(fields...), nil
}
