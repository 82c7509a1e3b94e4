package sessioncrypto

import "errors"

var (
	// ErrInvalidInput reports malformed caller input: an empty secret, a
	// wrong-length key, or a payload that fails structural validation.
	// Detected before any cryptographic work begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncrypt reports a failure of the encryption primitive itself.
	// Not transient; do not retry.
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecrypt reports an authentication failure. The message is
	// deliberately the same for a wrong key and for tampered or corrupted
	// ciphertext so callers cannot be used as a decryption oracle.
	ErrDecrypt = errors.New("invalid key or tampered data")
)
