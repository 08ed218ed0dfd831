package testutil

import (
	"fmt"
	"sync"

	"github.com/quarrydb/quarry/internal/sqlexpr"
)

// SequentialIDs is a deterministic ExpressionId source for tests.
//
// Unlike the production allocators, SequentialIDs can be reset for test
// reuse, so the same scenario produces identical ids on every run.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu  sync.Mutex
	seq int64
}

// NewSequentialIDs creates a deterministic allocator starting at 0.
//
// The first call to NextID() returns "e1".
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

// NextID returns the next id in the sequence: "e1", "e2", ...
func (s *SequentialIDs) NextID() sqlexpr.ExpressionId {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return sqlexpr.ExpressionId(fmt.Sprintf("e%d", s.seq))
}

// Reset resets the sequence to 0. After Reset(), the next call to NextID()
// returns "e1" again.
func (s *SequentialIDs) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
}
