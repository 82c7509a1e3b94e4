// Package message orchestrates encryption and storage of session messages.
//
// Each operation derives a fresh key scoped to the session and this machine
// from the master secret, performs the cryptographic work, wipes the key,
// and hands only ciphertext to the storage layer. Plaintext and key
// material never reach the store and never appear in errors.
package message
