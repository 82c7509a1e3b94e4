// Package sessioncrypto implements the end-to-end encryption core for
// session messages: deterministic key derivation from a master secret,
// authenticated encryption of message content, and the text encoding of
// the stored payload.
//
// Contents
//
//   - Scoped key derivation from a master secret (DeriveKey)
//   - Authenticated secretbox encryption of messages (Encrypt, Decrypt)
//   - Payload shape validation (IsEncryptedPayload)
//   - Random key generation for tests and ephemeral use (GenerateRandomKey)
//
// # Wire format
//
// A stored message is a pair of standard (padded) base64 fields:
// content_encrypted decodes to XSalsa20-Poly1305 ciphertext (plaintext
// length + 16-byte tag), encryption_nonce decodes to exactly 24 random
// bytes. The base64 flavor, the cipher, the nonce and tag sizes, and the
// usage label are all part of this format; changing any of them invalidates
// stored payloads and must be versioned through a new usage label.
//
// # Notes
//
// Every function here is pure apart from drawing nonces and keys from
// crypto/rand: no I/O, no shared state, safe for concurrent use. Callers
// should treat master secrets and derived keys as sensitive and wipe them
// when practical to reduce lifetime in memory. Error messages never carry
// plaintext, ciphertext, or key material.
package sessioncrypto
