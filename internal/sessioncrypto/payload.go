package sessioncrypto

import (
	"encoding/base64"
	"fmt"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

// The payload codec is standard padded base64. Fixed wire choice: stored
// payloads cannot be re-encoded without a migration.

func b64encode(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func b64decode(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// decodePayload checks the payload shape and decodes both fields. All
// structural problems are reported as ErrInvalidInput before any
// cryptographic work happens.
func decodePayload(p domain.EncryptedPayload) (ct []byte, nonce *[NonceSize]byte, err error) {
	if p.ContentEncrypted == "" {
		return nil, nil, fmt.Errorf("%w: payload missing content_encrypted field", ErrInvalidInput)
	}
	if p.Nonce == "" {
		return nil, nil, fmt.Errorf("%w: payload missing nonce field", ErrInvalidInput)
	}

	ct, err = b64decode(p.ContentEncrypted)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: content_encrypted is not valid base64", ErrInvalidInput)
	}
	nb, err := b64decode(p.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce is not valid base64", ErrInvalidInput)
	}

	if len(nb) != NonceSize {
		return nil, nil, fmt.Errorf("%w: nonce must decode to %d bytes, got %d", ErrInvalidInput, NonceSize, len(nb))
	}
	if len(ct) < Overhead {
		return nil, nil, fmt.Errorf("%w: ciphertext shorter than authentication tag", ErrInvalidInput)
	}

	nonce = new([NonceSize]byte)
	copy(nonce[:], nb)
	return ct, nonce, nil
}

// IsEncryptedPayload reports whether v looks like an encrypted payload:
// both fields present as non-empty strings. Accepts the payload struct, a
// pointer to it, or a map as produced by generic JSON decoding. Defensive
// validation only, not a security boundary.
func IsEncryptedPayload(v any) bool {
	switch p := v.(type) {
	case domain.EncryptedPayload:
		return p.ContentEncrypted != "" && p.Nonce != ""
	case *domain.EncryptedPayload:
		return p != nil && p.ContentEncrypted != "" && p.Nonce != ""
	case map[string]any:
		c, okC := p["content_encrypted"].(string)
		n, okN := p["encryption_nonce"].(string)
		return okC && okN && c != "" && n != ""
	default:
		return false
	}
}
