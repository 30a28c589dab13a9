package handoff

import (
	"atlas/internal/domain"
	"atlas/internal/protocol/attest"
	"atlas/internal/protocol/receipt"
)

// ReasonUnknownDevice is reported when the peer has no stored public key.
const ReasonUnknownDevice = "Unknown device"

// Service issues and verifies handoff artifacts.
type Service struct {
	ids     domain.IdentityStore
	devices domain.DeviceKeyStore

	attestOpts  attest.Options
	receiptOpts receipt.Options
}

// New constructs a handoff service with default verification bounds.
func New(ids domain.IdentityStore, devices domain.DeviceKeyStore) *Service {
	return &Service{ids: ids, devices: devices}
}

// NewWithOptions constructs a handoff service with explicit bounds, for
// callers that configure freshness windows or the proximity limit.
func NewWithOptions(ids domain.IdentityStore, devices domain.DeviceKeyStore, ao attest.Options, ro receipt.Options) *Service {
	return &Service{ids: ids, devices: devices, attestOpts: ao, receiptOpts: ro}
}

// Attest signs a proximity attestation with the local device key.
func (s *Service) Attest(passphrase string, proximityMeters float64) (domain.ProximityAttestation, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.ProximityAttestation{}, err
	}
	return attest.Issue(id.KeyPair.PrivateKey, proximityMeters)
}

// VerifyAttestation checks an attestation claimed to come from peer, using
// the public key on record. A missing record is a verification outcome, not
// an error; store failures are errors.
func (s *Service) VerifyAttestation(att domain.ProximityAttestation, peer domain.DeviceID) (domain.Verification, error) {
	rec, ok, err := s.devices.Get(peer)
	if err != nil {
		return domain.Verification{}, err
	}
	if !ok {
		return domain.Verification{Reason: ReasonUnknownDevice}, nil
	}
	return attest.Verify(att, rec.PublicKey, s.attestOpts), nil
}

// Handoff signs an anchor receipt claiming from handed session to to.
func (s *Service) Handoff(passphrase string, session domain.SessionID, from, to domain.DeviceID, stateHash string) (domain.AnchorReceipt, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.AnchorReceipt{}, err
	}
	return receipt.Issue(id.KeyPair.PrivateKey, session, from, to, stateHash)
}

// VerifyReceipt checks a receipt claimed to come from peer.
func (s *Service) VerifyReceipt(rcpt domain.AnchorReceipt, peer domain.DeviceID) (domain.Verification, error) {
	rec, ok, err := s.devices.Get(peer)
	if err != nil {
		return domain.Verification{}, err
	}
	if !ok {
		return domain.Verification{Reason: ReasonUnknownDevice}, nil
	}
	return receipt.Verify(rcpt, rec.PublicKey, s.receiptOpts), nil
}

// Compile-time assertion that Service implements domain.HandoffService.
var _ domain.HandoffService = (*Service)(nil)
