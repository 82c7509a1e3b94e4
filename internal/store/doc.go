// Package store provides persistence for encrypted session messages.
//
// It contains concrete implementations of domain.MessageStore, serialising
// messages as JSON. The stores treat payloads as opaque: the two encrypted
// fields are written and returned verbatim, never inspected or transformed.
// All methods are concurrency-safe via internal locking.
//
// The package includes:
//   - Per-session JSON files on disk (MessageFileStore)
//   - A map-backed store for tests and embedding (MemoryStore)
package store
