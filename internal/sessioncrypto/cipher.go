package sessioncrypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
	"github.com/VetSecItPro/styrby-app-sub006/internal/util/memzero"
)

const (
	// NonceSize is the secretbox nonce length. 24 bytes of fresh randomness
	// per call makes accidental reuse negligible at realistic volumes.
	NonceSize = 24

	// Overhead is the Poly1305 authentication tag length appended to every
	// ciphertext.
	Overhead = secretbox.Overhead
)

// Encrypt seals plaintext under key with a fresh random nonce and returns
// the base64-encoded payload. Output differs on every call even for
// identical inputs.
func Encrypt(plaintext string, key []byte) (domain.EncryptedPayload, error) {
	boxKey, err := asBoxKey(key)
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	defer memzero.Zero(boxKey[:])

	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("%w: nonce generation: %v", ErrEncrypt, err)
	}

	ct := secretbox.Seal(nil, []byte(plaintext), &nonce, boxKey)
	return domain.EncryptedPayload{
		ContentEncrypted: b64encode(ct),
		Nonce:            b64encode(nonce[:]),
	}, nil
}

// Decrypt validates the payload shape, then opens it under key. The
// authentication tag is verified before any plaintext is released; on
// failure no partial plaintext is ever returned and the error does not
// distinguish a wrong key from tampered data.
func Decrypt(payload domain.EncryptedPayload, key []byte) (string, error) {
	boxKey, err := asBoxKey(key)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(boxKey[:])

	ct, nonce, err := decodePayload(payload)
	if err != nil {
		return "", err
	}

	pt, ok := secretbox.Open(nil, ct, nonce, boxKey)
	if !ok {
		return "", ErrDecrypt
	}
	return string(pt), nil
}

// GenerateRandomKey returns KeySize bytes of cryptographically secure
// randomness. For tests and ephemeral use only: production keys must come
// from DeriveKey so they are reproducible and scoped to a session/device.
func GenerateRandomKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	return key, nil
}

// asBoxKey checks the key length and copies it into the fixed-size array
// secretbox expects. The caller owns the original; the copy is wiped by the
// callers above after use.
func asBoxKey(key []byte) (*[KeySize]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidInput, KeySize, len(key))
	}
	var k [KeySize]byte
	copy(k[:], key)
	return &k, nil
}
