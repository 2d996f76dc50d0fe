// Package idgen hands out numeric ids derived from the wall clock in
// milliseconds, bumped past the previous id when two calls share a millisecond.
package idgen

import (
	"sync"
	"time"

	"furnishop/internal/domain/service"
)

type millisGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// New returns a generator backed by time.Now.
func New() service.IDGenerator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a generator reading the given clock.
func NewWithClock(now func() time.Time) service.IDGenerator {
	return &millisGenerator{now: now}
}

// NextID returns max(now in ms, previous id + 1), so ids strictly increase
// even if the clock stalls or steps backwards.
func (g *millisGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}
