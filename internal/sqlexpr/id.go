package sqlexpr

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// ExpressionId is a process-unique identity token owned by an expression
// node. It is minted once at construction and never recomputed; equality of
// ids, not structural equality, decides whether two references are the same
// occurrence (the same column referenced twice gets two ids).
type ExpressionId string

// IDAllocator mints ExpressionIds. Implementations must be safe for
// concurrent use and collision-free for the life of the process.
type IDAllocator interface {
	NextID() ExpressionId
}

// UUIDAllocator mints RFC 4122 version 7 ids. This is the production
// default: ids are unique without coordination and sort by creation time.
type UUIDAllocator struct{}

// NewUUIDAllocator creates a UUID-backed allocator.
func NewUUIDAllocator() *UUIDAllocator {
	return &UUIDAllocator{}
}

// NextID returns a fresh UUIDv7 id.
func (*UUIDAllocator) NextID() ExpressionId {
	return ExpressionId(uuid.Must(uuid.NewV7()).String())
}

// CounterAllocator mints ids from an atomic counter. Cheaper than UUIDs and
// deterministic given a deterministic construction order, which makes plan
// output reproducible in tests and tooling.
type CounterAllocator struct {
	seq atomic.Int64
}

// NewCounterAllocator creates a counter-backed allocator starting at 0; the
// first id minted is "1".
func NewCounterAllocator() *CounterAllocator {
	return &CounterAllocator{}
}

// NextID returns the next counter id.
func (a *CounterAllocator) NextID() ExpressionId {
	return ExpressionId(strconv.FormatInt(a.seq.Add(1), 10))
}
