package share

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock is a Lamport clock tagged with this process's site id.
type Clock struct {
	site    string
	counter atomic.Uint64
}

// NewClock returns a clock with a fresh random site id.
func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

// Site identifies this process among peers.
func (c *Clock) Site() string { return c.site }

// Tick advances the clock for a local event.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Observe moves the clock past a timestamp seen from a peer.
func (c *Clock) Observe(t uint64) {
	for {
		cur := c.counter.Load()
		if t <= cur || c.counter.CompareAndSwap(cur, t) {
			return
		}
	}
}

// Now returns the current value without advancing it.
func (c *Clock) Now() uint64 { return c.counter.Load() }
