package domain

import "context"

// MasterSecretProvider yields the raw master secret for the currently
// authenticated principal. Callers must wipe the returned bytes when done;
// implementations never retain references to what they hand out.
type MasterSecretProvider interface {
	MasterSecret() ([]byte, error)
}

// MessageStore persists encrypted messages. Implementations store the
// payload fields verbatim and return exactly what was stored; they never
// inspect or transform ciphertext.
type MessageStore interface {
	Save(ctx context.Context, msg StoredMessage) error
	Load(ctx context.Context, session SessionID, id MessageID) (StoredMessage, bool, error)
	List(ctx context.Context, session SessionID) ([]StoredMessage, error)
}

// MessageService encrypts, stores, fetches and decrypts session messages.
type MessageService interface {
	Send(ctx context.Context, session SessionID, plaintext string) (MessageID, error)
	Open(ctx context.Context, session SessionID, id MessageID) (string, error)
	Fetch(ctx context.Context, session SessionID) ([]DecryptedMessage, error)
}
