package secretsource

import (
	"errors"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

var errEmptySecret = errors.New("empty master secret")

// Enclave keeps the master secret encrypted in process memory, decrypting
// it into a locked buffer only for the duration of each MasterSecret call.
type Enclave struct {
	enclave *memguard.Enclave
}

// NewEnclave seals secret into a memguard enclave. The input buffer is
// wiped as a side effect; the enclave owns the secret afterwards.
func NewEnclave(secret []byte) (*Enclave, error) {
	if len(secret) == 0 {
		return nil, errEmptySecret
	}
	return &Enclave{enclave: memguard.NewEnclave(secret)}, nil
}

// MasterSecret returns a copy of the sealed secret. The enclave's own view
// is destroyed again before returning.
func (e *Enclave) MasterSecret() ([]byte, error) {
	buf, err := e.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open master secret enclave: %w", err)
	}
	defer buf.Destroy()

	out := make([]byte, buf.Size())
	copy(out, buf.Bytes())
	return out, nil
}

// Static holds the secret as an ordinary byte slice. Test use only.
type Static struct {
	secret []byte
}

// NewStatic copies secret into a Static provider.
func NewStatic(secret []byte) *Static {
	s := make([]byte, len(secret))
	copy(s, secret)
	return &Static{secret: s}
}

// MasterSecret returns a copy of the held secret.
func (s *Static) MasterSecret() ([]byte, error) {
	if len(s.secret) == 0 {
		return nil, errEmptySecret
	}
	out := make([]byte, len(s.secret))
	copy(out, s.secret)
	return out, nil
}

var (
	_ domain.MasterSecretProvider = (*Enclave)(nil)
	_ domain.MasterSecretProvider = (*Static)(nil)
)
