package locking

import "sync"

// MemLock is a Group that holds one in-memory mutex per key. Callers for the
// same key run one after another, each executing fn.
type MemLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemLock creates a MemLock.
func NewMemLock() *MemLock {
	return &MemLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *MemLock) DoWithLock(key string, fn func() (interface{}, error)) (interface{}, error) {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}
