package cache

import (
	"context"
	"sync"
	"time"
)

type dedupEntry struct {
	expiresAt time.Time
}

// InMemoryViewDedupStore implements ViewDedupStore with a map. Suitable for
// single-instance deployments; state is lost on restart, which only means a
// handful of double-counted views.
type InMemoryViewDedupStore struct {
	mu        sync.RWMutex
	entries   map[string]dedupEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryViewDedupStore creates the store and starts a background
// goroutine that evicts expired entries.
func NewInMemoryViewDedupStore() *InMemoryViewDedupStore {
	store := &InMemoryViewDedupStore{
		entries:  make(map[string]dedupEntry),
		stopChan: make(chan struct{}),
	}
	store.wg.Add(1)
	go store.cleanupLoop()
	return store
}

// MarkViewed records the view and reports whether it is the first within TTL.
func (s *InMemoryViewDedupStore) MarkViewed(_ context.Context, visitorKey, contentID string, ttl time.Duration) (bool, error) {
	key := contentID + ":" + visitorKey

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, exists := s.entries[key]; exists && time.Now().Before(e.expiresAt) {
		return false, nil
	}
	s.entries[key] = dedupEntry{expiresAt: time.Now().Add(ttl)}
	return true, nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryViewDedupStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryViewDedupStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryViewDedupStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryViewDedupStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryViewDedupStore implements ViewDedupStore
var _ ViewDedupStore = (*InMemoryViewDedupStore)(nil)
