package sessionlock

import "sync"

// Registry hands out one mutex per session key so turns from the same
// buyer are serialized while turns from different buyers run in
// parallel. Entries are reference counted and dropped once unused.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	lock sync.Mutex
	refs int
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Acquire blocks until the lock for key is held and returns the release
// function. Callers must release exactly once, typically via defer.
func (r *Registry) Acquire(key string) func() {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	e.refs++
	r.mu.Unlock()

	e.lock.Lock()

	return func() {
		e.lock.Unlock()

		r.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(r.entries, key)
		}
		r.mu.Unlock()
	}
}

// Active returns the number of keys currently tracked.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
