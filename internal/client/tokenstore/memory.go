package tokenstore

import "sync"

// MemStore is an in-memory Store used in tests and as a non-persistent
// fallback.
type MemStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = access, refresh
	return nil
}

func (s *MemStore) Access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *MemStore) Refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	return nil
}
