package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is the metrics facade. Systems cache the pointer for a key at
// init and write to the atomic directly from their update loops; the
// renderer's status bar reads the same pointers each frame.
type Registry struct {
	Ints   *Map[atomic.Int64]
	Floats *Map[Float]
	Bools  *Map[atomic.Bool]
}

// NewRegistry creates an initialized registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMap[atomic.Int64](),
		Floats: NewMap[Float](),
		Bools:  NewMap[atomic.Bool](),
	}
}

// Map is a thread-safe metric registry for one atomic type. Lookup of an
// existing key is RLock-only; writes through cached pointers are
// lock-free.
type Map[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMap[T any]() *Map[T] {
	return &Map[T]{items: make(map[string]*T)}
}

// Get returns the metric pointer for key, allocating on first use
func (m *Map[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok = m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in sorted key order
func (m *Map[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *Map[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
