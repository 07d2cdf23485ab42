package session

import (
	"context"
	"sync"
	"time"

	"ngoconnect-web/models"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.Expired(m.now()) {
		_ = m.Delete(ctx, id)
		return nil, ErrNotFound
	}

	s.Flashes = append([]models.Flash(nil), s.Flashes...)
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *models.Session) error {
	cp := *s
	cp.Flashes = append([]models.Flash(nil), s.Flashes...)

	m.mu.Lock()
	m.sessions[s.ID] = cp
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored records, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
