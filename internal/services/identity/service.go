package identity

import (
	"time"

	"atlas/internal/crypto"
	"atlas/internal/domain"
)

// Service manages the local device identity using a backing store.
//
// The identity contains:
//   - An ECDSA P-256 keypair for signing attestations and receipts.
//   - A random device id, deliberately not derived from the keypair.
type Service struct {
	ids     domain.IdentityStore
	devices domain.DeviceKeyStore
}

// New returns an identity service backed by the given stores.
func New(ids domain.IdentityStore, devices domain.DeviceKeyStore) *Service {
	return &Service{ids: ids, devices: devices}
}

// Provision creates a new device identity, saves it encrypted with the
// passphrase, and registers the public record in the device key store.
func (s *Service) Provision(passphrase string) (domain.DeviceIdentity, error) {
	keyPair, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		return domain.DeviceIdentity{}, err
	}
	deviceID, err := crypto.GenerateDeviceID()
	if err != nil {
		return domain.DeviceIdentity{}, err
	}

	id := domain.DeviceIdentity{DeviceID: deviceID, KeyPair: keyPair}
	if err := s.ids.SaveIdentity(passphrase, id); err != nil {
		return domain.DeviceIdentity{}, err
	}

	rec := domain.DeviceRecord{
		PublicKey:   keyPair.PublicKey,
		Fingerprint: keyPair.Fingerprint,
		AddedUnix:   time.Now().Unix(),
	}
	if err := s.devices.Put(deviceID, rec); err != nil {
		return domain.DeviceIdentity{}, err
	}
	return id, nil
}

// Load decrypts and returns the local identity.
func (s *Service) Load(passphrase string) (domain.DeviceIdentity, error) {
	return s.ids.LoadIdentity(passphrase)
}

// Fingerprint returns the short fingerprint of the local public key.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return id.KeyPair.Fingerprint, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
