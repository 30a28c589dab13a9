package domain

// IdentityStore persists the local device identity, private key included,
// encrypted under a passphrase.
type IdentityStore interface {
	SaveIdentity(passphrase string, id DeviceIdentity) error
	LoadIdentity(passphrase string) (DeviceIdentity, error)
}

// DeviceKeyStore owns the deviceId -> public record map for known peers.
// No other component mutates these records directly.
type DeviceKeyStore interface {
	Put(id DeviceID, rec DeviceRecord) error
	Get(id DeviceID) (DeviceRecord, bool, error)
	List() (map[DeviceID]DeviceRecord, error)
	Remove(id DeviceID) error
}

// IdentityService provisions and inspects the local device identity.
type IdentityService interface {
	Provision(passphrase string) (DeviceIdentity, error)
	Load(passphrase string) (DeviceIdentity, error)
	Fingerprint(passphrase string) (Fingerprint, error)
}

// HandoffService issues and verifies the signed artifacts exchanged during
// a device-to-device handoff.
type HandoffService interface {
	Attest(passphrase string, proximityMeters float64) (ProximityAttestation, error)
	VerifyAttestation(att ProximityAttestation, peer DeviceID) (Verification, error)
	Handoff(passphrase string, session SessionID, from, to DeviceID, stateHash string) (AnchorReceipt, error)
	VerifyReceipt(rcpt AnchorReceipt, peer DeviceID) (Verification, error)
}
