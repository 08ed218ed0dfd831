package sqltype

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// TestConversionCatalogGolden locks the published ordinal of every
// conversion. Persisted plans reference conversions by ordinal, so a diff in
// this table means a wire-compatibility break: only appends are acceptable.
func TestConversionCatalogGolden(t *testing.T) {
	var buf bytes.Buffer
	for _, c := range Conversions() {
		fmt.Fprintf(&buf, "%d\t%s\n", c.Ordinal(), c.Name())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "conversion_catalog", buf.Bytes())
}

func TestConversionNamesAreUnique(t *testing.T) {
	seen := make(map[string]Conversion)
	for _, c := range Conversions() {
		name := c.Name()
		assert.NotEmpty(t, name, "ordinal %d has no name", c.Ordinal())
		prev, dup := seen[name]
		assert.False(t, dup, "name %q reused by ordinals %d and %d", name, prev.Ordinal(), c.Ordinal())
		seen[name] = c
	}
}
