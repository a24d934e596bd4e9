package svgpaint

import "sync"

// onceCell caches the first successfully computed value for the
// lifetime of its owner. Failed computations are not cached, so a later
// call may retry. Under a single-threaded render the mutex is
// uncontended; concurrent readers still observe "resolved exactly once".
type onceCell[T any] struct {
	mu   sync.Mutex
	val  T
	done bool
}

// getOrTryInit returns the cached value, computing it with init on
// first use. At most one successful init ever runs.
func (c *onceCell[T]) getOrTryInit(init func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return c.val, nil
	}
	v, err := init()
	if err != nil {
		var zero T
		return zero, err
	}
	c.val = v
	c.done = true
	return v, nil
}
