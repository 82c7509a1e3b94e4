package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

// MessageFileStore persists encrypted messages to per-session JSON files.
type MessageFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMessageFileStore returns a MessageFileStore rooted at dir.
func NewMessageFileStore(dir string) *MessageFileStore {
	return &MessageFileStore{dir: dir}
}

// path maps a session ID to its file. The ID is hex-encoded so arbitrary
// identifiers cannot escape dir.
func (s *MessageFileStore) path(session domain.SessionID) string {
	return filepath.Join(s.dir, "messages-"+hex.EncodeToString([]byte(session))+".json")
}

// Save appends msg to its session file.
func (s *MessageFileStore) Save(ctx context.Context, msg domain.StoredMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.ID == "" {
		return fmt.Errorf("stored message missing id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(msg.SessionID)
	var msgs []domain.StoredMessage
	if err := readJSON(path, &msgs); err != nil {
		return err
	}
	msgs = append(msgs, msg)
	return writeJSON(path, msgs, 0o600)
}

// Load retrieves a single message by ID.
func (s *MessageFileStore) Load(ctx context.Context, session domain.SessionID, id domain.MessageID) (domain.StoredMessage, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredMessage{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []domain.StoredMessage
	if err := readJSON(s.path(session), &msgs); err != nil {
		return domain.StoredMessage{}, false, err
	}
	for _, m := range msgs {
		if m.ID == id {
			return m, true, nil
		}
	}
	return domain.StoredMessage{}, false, nil
}

// List returns a session's messages in the order they were stored.
func (s *MessageFileStore) List(ctx context.Context, session domain.SessionID) ([]domain.StoredMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []domain.StoredMessage
	if err := readJSON(s.path(session), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Compile-time assertion that MessageFileStore implements domain.MessageStore.
var _ domain.MessageStore = (*MessageFileStore)(nil)
