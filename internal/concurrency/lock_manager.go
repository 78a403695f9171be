// Package concurrency serialises read-modify-write cycles per user.
package concurrency

import "sync"

// keyLock is a mutex shared by everyone currently holding or waiting on a key.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. Entries are reference counted and
// removed once no caller holds or waits on them, so the map only grows with
// the number of users active at the same time.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

func (m *LockManager) acquire(key string) *keyLock {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return l
}

func (m *LockManager) release(key string, l *keyLock) {
	l.mu.Unlock()

	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

// WithLock runs fn while holding the lock for key.
func (m *LockManager) WithLock(key string, fn func() error) error {
	l := m.acquire(key)
	defer m.release(key, l)
	return fn()
}

// Len returns the number of keys currently held or waited on.
func (m *LockManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
