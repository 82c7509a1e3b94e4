package domain

// SessionID identifies a conversation session between the local agent and
// the dashboard.
type SessionID string

// MachineID identifies the device a message originated from.
type MachineID string

// MessageID identifies a single stored message within a session.
type MessageID string

// StoredMessage is the persisted unit: an encrypted payload plus the
// metadata the storage layer needs to hand it back in order.
type StoredMessage struct {
	ID         MessageID        `json:"id"`
	SessionID  SessionID        `json:"session_id"`
	CreatedUTC int64            `json:"created_utc"`
	Payload    EncryptedPayload `json:"payload"`
}

// DecryptedMessage is a message after successful decryption.
type DecryptedMessage struct {
	ID         MessageID
	CreatedUTC int64
	Plaintext  string
}
