package event

import "sync"

// Counter tallies events per type. Shared between handlers and whoever
// renders the totals.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}
