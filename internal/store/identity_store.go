package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"atlas/internal/domain"
)

const identityFile = "identity.json.enc"

// IdentityFileStore persists the local device identity to disk, sealed under
// a passphrase. The private key never leaves this store unencrypted.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// SaveIdentity writes the encrypted identity to disk.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.DeviceIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFile), ct, 0o600)
}

// LoadIdentity reads and decrypts the identity. A missing file reports
// domain.ErrNoIdentity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.DeviceIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DeviceIdentity{}, domain.ErrNoIdentity
	}
	if err != nil {
		return domain.DeviceIdentity{}, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.DeviceIdentity{}, err
	}
	var id domain.DeviceIdentity
	if err := json.Unmarshal(pt, &id); err != nil {
		return domain.DeviceIdentity{}, fmt.Errorf("decode identity: %w", err)
	}
	return id, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
