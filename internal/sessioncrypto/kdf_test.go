package sessioncrypto_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/VetSecItPro/styrby-app-sub006/internal/sessioncrypto"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("master secret material")

	k1, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "session-a", "machine-b")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "session-a", "machine-b")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("same inputs produced different keys")
	}
	if len(k1) != sessioncrypto.KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), sessioncrypto.KeySize)
	}
}

func TestDeriveKey_EmptySecret(t *testing.T) {
	_, err := sessioncrypto.DeriveKey(nil, sessioncrypto.UsageLabel, "session-a", "machine-b")
	if !errors.Is(err, sessioncrypto.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestDeriveKey_DomainSeparation(t *testing.T) {
	secret := []byte("master secret material")

	base, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "session-a", "machine-x")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	variants := [][]string{
		{"session-b", "machine-x"}, // different session, same machine
		{"session-a", "machine-y"}, // same session, different machine
		{"machine-x", "session-a"}, // order matters
	}
	for _, path := range variants {
		k, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, path...)
		if err != nil {
			t.Fatalf("DeriveKey(%v): %v", path, err)
		}
		if bytes.Equal(base, k) {
			t.Fatalf("path %v derived the same key as the base path", path)
		}
	}

	// Different label, same path.
	k, err := sessioncrypto.DeriveKey(secret, "styrby-session-encryption-v2", "session-a", "machine-x")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(base, k) {
		t.Fatalf("changing the usage label did not change the key")
	}
}

func TestDeriveKey_NoCollisionsOnRandomIdentifiers(t *testing.T) {
	secret := []byte("master secret material")

	seen := make(map[string][]string, 512)
	for i := 0; i < 512; i++ {
		var id [8]byte
		if _, err := rand.Read(id[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}
		session := "session-" + hex.EncodeToString(id[:4])
		machine := "machine-" + hex.EncodeToString(id[4:])

		k, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, session, machine)
		if err != nil {
			t.Fatalf("DeriveKey: %v", err)
		}
		if prev, dup := seen[string(k)]; dup {
			t.Fatalf("key collision between %v and %v", prev, []string{session, machine})
		}
		seen[string(k)] = []string{session, machine}
	}
}

// Adjacent components must not be confusable: ["a","bc"] and ["ab","c"]
// concatenate identically but must derive unrelated keys.
func TestDeriveKey_ComponentBoundaries(t *testing.T) {
	secret := []byte("master secret material")

	k1, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "a", "bc")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "ab", "c")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("shifted component boundary derived the same key")
	}
}

func TestDeriveKey_ConcurrentCallers(t *testing.T) {
	secret := []byte("master secret material")

	want, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "session-a", "machine-x")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	errc := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				k, err := sessioncrypto.DeriveKey(secret, sessioncrypto.UsageLabel, "session-a", "machine-x")
				if err != nil {
					errc <- err
					return
				}
				if !bytes.Equal(k, want) {
					errc <- fmt.Errorf("concurrent derivation diverged")
					return
				}
			}
			errc <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-errc; err != nil {
			t.Fatal(err)
		}
	}
}
