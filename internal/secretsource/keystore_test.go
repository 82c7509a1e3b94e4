package secretsource_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/VetSecItPro/styrby-app-sub006/internal/secretsource"
)

func TestKeystore_InitAndLoad(t *testing.T) {
	dir := t.TempDir()
	secret := []byte("the master secret")

	ks := secretsource.NewKeystore(dir, "pass")
	if err := ks.Init(secret); err != nil {
		t.Fatalf("init keystore: %v", err)
	}

	got, err := ks.MasterSecret()
	if err != nil {
		t.Fatalf("load master secret: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Fatalf("mismatch after load")
	}
}

func TestKeystore_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()

	if err := secretsource.NewKeystore(dir, "correct").Init([]byte("s")); err != nil {
		t.Fatalf("init keystore: %v", err)
	}
	if _, err := secretsource.NewKeystore(dir, "wrong").MasterSecret(); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestKeystore_InitTwice(t *testing.T) {
	dir := t.TempDir()

	ks := secretsource.NewKeystore(dir, "pass")
	if err := ks.Init([]byte("s")); err != nil {
		t.Fatalf("init keystore: %v", err)
	}
	if err := ks.Init([]byte("other")); !errors.Is(err, secretsource.ErrKeystoreExists) {
		t.Fatalf("got %v, want ErrKeystoreExists", err)
	}
}

func TestKeystore_Missing(t *testing.T) {
	ks := secretsource.NewKeystore(t.TempDir(), "pass")
	if _, err := ks.MasterSecret(); !errors.Is(err, secretsource.ErrNoKeystore) {
		t.Fatalf("got %v, want ErrNoKeystore", err)
	}
}
