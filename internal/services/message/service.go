package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
	"github.com/VetSecItPro/styrby-app-sub006/internal/sessioncrypto"
	"github.com/VetSecItPro/styrby-app-sub006/internal/util/memzero"
)

// ErrMessageNotFound indicates the requested message is not in the store.
var ErrMessageNotFound = errors.New("message not found")

// Service encrypts, stores, fetches and decrypts session messages.
//
// High-level flow:
//   - Send: derive the (session, machine)-scoped key, encrypt, persist the
//     opaque payload under a fresh message ID.
//   - Open/Fetch: load payloads, derive the same key, decrypt. A payload
//     written by another machine fails to decrypt here; keys are scoped per
//     device so a compromised device cannot read another device's copies.
type Service struct {
	secrets domain.MasterSecretProvider
	store   domain.MessageStore
	machine domain.MachineID
}

// New constructs a message Service with the given secret provider and store.
func New(secrets domain.MasterSecretProvider, store domain.MessageStore, machine domain.MachineID) *Service {
	return &Service{
		secrets: secrets,
		store:   store,
		machine: machine,
	}
}

// Send encrypts plaintext for session and persists the resulting payload.
// Returns the ID the stored message can be retrieved under.
func (s *Service) Send(ctx context.Context, session domain.SessionID, plaintext string) (domain.MessageID, error) {
	key, err := s.sessionKey(session)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(key)

	payload, err := sessioncrypto.Encrypt(plaintext, key)
	if err != nil {
		return "", err
	}

	msg := domain.StoredMessage{
		ID:         domain.MessageID(uuid.NewString()),
		SessionID:  session,
		CreatedUTC: time.Now().UTC().Unix(),
		Payload:    payload,
	}
	if err := s.store.Save(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// Open loads a single message and decrypts it.
func (s *Service) Open(ctx context.Context, session domain.SessionID, id domain.MessageID) (string, error) {
	msg, ok, err := s.store.Load(ctx, session, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrMessageNotFound
	}
	if !sessioncrypto.IsEncryptedPayload(msg.Payload) {
		return "", sessioncrypto.ErrInvalidInput
	}

	key, err := s.sessionKey(session)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(key)

	return sessioncrypto.Decrypt(msg.Payload, key)
}

// Fetch loads and decrypts all of a session's messages in stored order.
// Decryption failures surface unchanged; no partial plaintext is returned
// for the failing message.
func (s *Service) Fetch(ctx context.Context, session domain.SessionID) ([]domain.DecryptedMessage, error) {
	msgs, err := s.store.List(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	key, err := s.sessionKey(session)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	out := make([]domain.DecryptedMessage, 0, len(msgs))
	for _, m := range msgs {
		pt, err := sessioncrypto.Decrypt(m.Payload, key)
		if err != nil {
			return out, err
		}
		out = append(out, domain.DecryptedMessage{
			ID:         m.ID,
			CreatedUTC: m.CreatedUTC,
			Plaintext:  pt,
		})
	}
	return out, nil
}

// sessionKey derives the key for session on this machine. The master secret
// copy is wiped before returning; the caller owns and wipes the key.
func (s *Service) sessionKey(session domain.SessionID) ([]byte, error) {
	secret, err := s.secrets.MasterSecret()
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(secret)

	return sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, string(session), string(s.machine))
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
