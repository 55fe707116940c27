package mem

import (
	"sync"
	"time"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/view_models"
)

type SessionStoreInterface interface {
	Put(state *view_models.SessionState)

	// Get returns the live state for id, refreshing its TTL.
	// Returns nil if missing or expired.
	Get(id string) *view_models.SessionState

	Delete(id string)
}

type entry struct {
	state     *view_models.SessionState
	expiresAt time.Time
}

// SessionStore keeps session view-state in process memory with a sliding
// TTL. Nothing survives a restart; sessions are cheap to rebuild.
type SessionStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:  ttl,
		data: make(map[string]entry),
	}
}

func (s *SessionStore) Put(state *view_models.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[state.ID] = entry{
		state:     state,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.evictExpiredLocked()
}

func (s *SessionStore) Get(id string) *view_models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.state
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

// evictExpiredLocked keeps the map from growing without bound. Caller holds
// the write lock.
func (s *SessionStore) evictExpiredLocked() {
	if len(s.data) < 1000 {
		return
	}
	now := time.Now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
