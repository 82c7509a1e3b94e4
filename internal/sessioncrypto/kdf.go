package sessioncrypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/VetSecItPro/styrby-app-sub006/internal/util/memzero"
)

const (
	// UsageLabel tags every key derivation performed by this package. It is
	// part of the wire format: changing it is a breaking migration that
	// invalidates every previously derived key and therefore every stored
	// payload not re-encrypted under the new label.
	UsageLabel = "styrby-session-encryption-v1"

	// KeySize is the length of a derived secretbox key.
	KeySize = 32
)

// DeriveKey derives a KeySize-byte symmetric key from secret, scoped by
// usageLabel and the ordered pathComponents (session ID, machine ID).
//
// The key is HMAC-SHA-512 keyed by secret over a length-prefixed encoding
// of the label and each component, truncated to KeySize bytes. Identical
// inputs always yield identical output; varying any component yields a
// computationally unrelated key, so per-session and per-device keys never
// collide even under the same master secret.
//
// Deterministic and side-effect free; safe for concurrent use.
func DeriveKey(secret []byte, usageLabel string, pathComponents ...string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidInput)
	}

	mac := hmac.New(sha512.New, secret)
	writeField(mac, usageLabel)
	for _, c := range pathComponents {
		writeField(mac, c)
	}
	sum := mac.Sum(nil)

	key := make([]byte, KeySize)
	copy(key, sum)
	memzero.Zero(sum)
	return key, nil
}

// writeField prefixes each field with its big-endian uint32 length so that
// adjacent components can never be confused: ["a","bc"] and ["ab","c"]
// produce different MAC inputs. The prefix is part of the wire format.
func writeField(h hash.Hash, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}
