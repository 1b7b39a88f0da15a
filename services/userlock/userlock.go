// Package userlock serializes read-modify-write cycles on a single user's
// records. Exchanges and memory mutations for the same user take the same
// lock; different users proceed in parallel.
package userlock

import "sync"

type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Locker {
	return &Locker{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the mutex for userID, creating it on first use. The returned
// function releases it.
func (l *Locker) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
