package confirm

import (
	"context"
	"sync"
	"time"

	"skill-tracking-assistant/internal/model"
)

// MemoryStore is an in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	pending map[string]model.PendingConfirmation
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pending: make(map[string]model.PendingConfirmation),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.PendingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[sessionID]
	if !ok {
		return nil, nil
	}
	if s.now().Sub(p.CreatedAt) >= TTL {
		delete(s.pending, sessionID)
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) Set(ctx context.Context, pending model.PendingConfirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[pending.SessionID] = pending
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, sessionID)
	return nil
}
