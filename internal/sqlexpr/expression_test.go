package sqlexpr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/sqltype"
)

func TestUnresolvedAttributeState(t *testing.T) {
	ids := NewCounterAllocator()
	u := NewUnresolvedAttribute(ids, Location{Line: 1, Column: 8}, "price")

	assert.False(t, u.Resolved())
	assert.Equal(t, Location{Line: 1, Column: 8}, u.Location())
	assert.Empty(t, u.Children())
	assert.Equal(t, "price", u.Ref())
	assert.Equal(t, "unknown column [price]", u.UnresolvedMessage())
}

func TestUnresolvedAccessFails(t *testing.T) {
	ids := NewCounterAllocator()
	u := NewUnresolvedAttribute(ids, Location{}, "price")

	_, err := u.Name()
	require.Error(t, err)
	assert.True(t, IsUnresolved(err))
	assert.EqualError(t, err, "invalid call to name on an unresolved object ?price")

	_, err = u.ID()
	require.Error(t, err)
	assert.True(t, IsUnresolved(err))
	assert.Contains(t, err.Error(), "invalid call to id")

	_, err = u.DataType()
	require.Error(t, err)
	assert.True(t, IsUnresolved(err))
	assert.Contains(t, err.Error(), "invalid call to data type")

	_, err = u.ToAttribute()
	require.Error(t, err)
	assert.True(t, IsUnresolved(err))
	assert.Contains(t, err.Error(), "invalid call to attribute")
}

func TestUnresolvedAttributeMintsAnID(t *testing.T) {
	ids := NewCounterAllocator()
	u := NewUnresolvedAttribute(ids, Location{}, "a")

	// the id exists for structural bookkeeping even though ID() fails
	assert.Equal(t, ExpressionId("1"), u.id)
	next := ids.NextID()
	assert.Equal(t, ExpressionId("2"), next)
}

func TestFieldAttributeAccessorsAreStable(t *testing.T) {
	ids := NewCounterAllocator()
	a := NewFieldAttribute(ids, Location{Line: 2, Column: 3}, "products", "price", sqltype.Double)

	assert.True(t, a.Resolved())

	for i := 0; i < 3; i++ {
		name, err := a.Name()
		require.NoError(t, err)
		assert.Equal(t, "price", name)

		id, err := a.ID()
		require.NoError(t, err)
		assert.Equal(t, ExpressionId("1"), id)

		typ, err := a.DataType()
		require.NoError(t, err)
		assert.Equal(t, sqltype.Double, typ)

		attr, err := a.ToAttribute()
		require.NoError(t, err)
		assert.Same(t, a, attr)
	}

	assert.Equal(t, "products.price", a.QualifiedName())
	assert.Equal(t, "products", a.Qualifier())
}

func TestSameFieldResolvedTwiceGetsDistinctIDs(t *testing.T) {
	ids := NewCounterAllocator()
	first := NewFieldAttribute(ids, Location{}, "", "price", sqltype.Double)
	second := NewFieldAttribute(ids, Location{}, "", "price", sqltype.Double)

	id1, err := first.ID()
	require.NoError(t, err)
	id2, err := second.ID()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestNamedExpressionInterface(t *testing.T) {
	ids := NewCounterAllocator()

	var _ NamedExpression = NewUnresolvedAttribute(ids, Location{}, "x")
	var _ NamedExpression = NewFieldAttribute(ids, Location{}, "", "x", sqltype.Long)
	var _ Unresolvable = NewUnresolvedAttribute(ids, Location{}, "x")
	var _ Expression = NewLiteral(Location{}, int64(1), sqltype.Long)
}

func TestLiteral(t *testing.T) {
	l := NewLiteral(Location{Line: 1, Column: 2}, int64(42), sqltype.Long)

	assert.True(t, l.Resolved())
	assert.Equal(t, int64(42), l.Value())
	assert.Equal(t, sqltype.Long, l.DataType())
	assert.Equal(t, "42", l.String())
}

func TestCounterAllocatorIsConcurrencySafe(t *testing.T) {
	ids := NewCounterAllocator()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	out := make(chan ExpressionId, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				out <- ids.NextID()
			}
		}()
	}
	wg.Wait()
	close(out)

	seen := make(map[ExpressionId]bool, workers*perWorker)
	for id := range out {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDAllocatorMintsUniqueIDs(t *testing.T) {
	ids := NewUUIDAllocator()

	seen := make(map[ExpressionId]bool)
	for i := 0; i < 100; i++ {
		id := ids.NextID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
