package store

import (
	"context"
	"sync"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

// MemoryStore is a map-backed MessageStore for tests and embedding.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[domain.SessionID][]domain.StoredMessage
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[domain.SessionID][]domain.StoredMessage)}
}

func (s *MemoryStore) Save(ctx context.Context, msg domain.StoredMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[msg.SessionID] = append(s.sessions[msg.SessionID], msg)
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, session domain.SessionID, id domain.MessageID) (domain.StoredMessage, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredMessage{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.sessions[session] {
		if m.ID == id {
			return m, true, nil
		}
	}
	return domain.StoredMessage{}, false, nil
}

func (s *MemoryStore) List(ctx context.Context, session domain.SessionID) ([]domain.StoredMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]domain.StoredMessage, len(s.sessions[session]))
	copy(msgs, s.sessions[session])
	return msgs, nil
}

var _ domain.MessageStore = (*MemoryStore)(nil)
