package secretsource

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

const (
	keystoreFilename = "master_secret.json"

	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1
)

var (
	// Returned when the passphrase is incorrect or the blob has been modified / corrupted.
	errWrongPassphrase = errors.New("wrong passphrase or corrupted keystore")

	// ErrKeystoreExists is returned by Init when a keystore is already present.
	ErrKeystoreExists = errors.New("keystore already initialised")

	// ErrNoKeystore is returned when no keystore has been initialised yet.
	ErrNoKeystore = errors.New("keystore not initialised")
)

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Keystore is a passphrase-protected master-secret file: the secret is
// sealed with a scrypt-derived key under ChaCha20-Poly1305 and decrypted
// fresh on every MasterSecret call, so the plaintext secret never sits in
// memory between calls.
type Keystore struct {
	dir        string
	passphrase string
}

// NewKeystore returns a Keystore rooted at dir.
func NewKeystore(dir, passphrase string) *Keystore {
	return &Keystore{dir: dir, passphrase: passphrase}
}

// Init seals secret under the keystore passphrase and writes the blob.
// Fails if a keystore already exists; it is never silently overwritten.
func (k *Keystore) Init(secret []byte) error {
	if len(secret) == 0 {
		return errEmptySecret
	}
	path := filepath.Join(k.dir, keystoreFilename)
	if _, err := os.Stat(path); err == nil {
		return ErrKeystoreExists
	}

	N, r, p := scryptParamsDefault()
	b, err := seal(k.passphrase, secret, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// MasterSecret loads and opens the keystore blob.
func (k *Keystore) MasterSecret() ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(k.dir, keystoreFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoKeystore
	}
	if err != nil {
		return nil, err
	}
	return open(k.passphrase, b)
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// open opens the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, errWrongPassphrase
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

var _ domain.MasterSecretProvider = (*Keystore)(nil)
