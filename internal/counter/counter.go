// Package counter provides the lock-guarded click counters behind the swap
// and animation demos.
package counter

import "sync"

// Counter is a mutex-protected monotonic counter.
type Counter struct {
	mu    sync.Mutex
	value int
}

func New() *Counter {
	return &Counter{}
}

// Increment bumps the counter and returns the new value.
func (c *Counter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

// Value returns the current value without mutating it.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
