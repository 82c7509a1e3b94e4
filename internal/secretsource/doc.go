// Package secretsource provides master-secret providers for the session
// encryption core: an in-memory enclave-backed provider, a passphrase
// protected on-disk keystore, and a plain static provider for tests.
//
// Providers hand out a fresh copy of the secret on every call; callers own
// the copy and are expected to wipe it once the derived key exists.
package secretsource
