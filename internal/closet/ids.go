package closet

import (
	"sync"
	"time"
)

// IDGenerator hands out item identifiers. Implementations must never return
// the same value twice.
type IDGenerator interface {
	NextID() int64
}

// ClockIDs derives ids from the wall clock in milliseconds, bumping by one
// when two calls land in the same millisecond or the clock steps backwards.
type ClockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDs creates a clock-backed generator. A nil now uses time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

// NextID implements IDGenerator.
func (g *ClockIDs) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// SequenceIDs is a plain counter. Used in tests and anywhere ids must be
// reproducible.
type SequenceIDs struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceIDs returns a counter whose first id is start. Zero is reserved
// for "no id", so start is raised to 1 when smaller.
func NewSequenceIDs(start int64) *SequenceIDs {
	if start < 1 {
		start = 1
	}
	return &SequenceIDs{next: start}
}

// NextID implements IDGenerator.
func (g *SequenceIDs) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}
