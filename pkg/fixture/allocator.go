package fixture

import (
	"sync"
	"sync/atomic"
)

// ID identifies one test's fixture directory
type ID uint64

// Allocator hands out IDs, one per test key. A key is whatever identifies a
// logical test, normally its testing.TB; it must be comparable.
//
// Keys are never released: every key stays referenced for the life of the
// Allocator. Use long-lived keys such as a test's testing.TB, not per-call
// values.
type Allocator struct {
	next atomic.Uint64

	mu  sync.Mutex
	ids sync.Map // key -> ID
}

// ID returns the ID for key, allocating the next counter value the first
// time key is seen. Later calls with the same key return the same ID.
func (a *Allocator) ID(key any) ID {
	if id, ok := a.ids.Load(key); ok {
		return id.(ID)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Another caller may have allocated for key while we waited.
	if id, ok := a.ids.Load(key); ok {
		return id.(ID)
	}
	id := ID(a.next.Add(1) - 1)
	a.ids.Store(key, id)
	return id
}

var defaultAllocator Allocator

// NextID returns the process-wide ID for key
func NextID(key any) ID {
	return defaultAllocator.ID(key)
}
