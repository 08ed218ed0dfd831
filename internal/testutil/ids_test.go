package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrydb/quarry/internal/sqlexpr"
)

func TestSequentialIDs(t *testing.T) {
	ids := NewSequentialIDs()

	assert.Equal(t, sqlexpr.ExpressionId("e1"), ids.NextID())
	assert.Equal(t, sqlexpr.ExpressionId("e2"), ids.NextID())
	assert.Equal(t, sqlexpr.ExpressionId("e3"), ids.NextID())
}

func TestSequentialIDsReset(t *testing.T) {
	ids := NewSequentialIDs()
	ids.NextID()
	ids.NextID()

	ids.Reset()

	assert.Equal(t, sqlexpr.ExpressionId("e1"), ids.NextID())
}

func TestSequentialIDsImplementsIDAllocator(t *testing.T) {
	var _ sqlexpr.IDAllocator = NewSequentialIDs()
}
