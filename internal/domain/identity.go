package domain

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
)

// DeviceID identifies a physical device. It is a random hex string chosen at
// provisioning time and is deliberately independent of the keypair
// fingerprint; nothing binds the two.
type DeviceID string

// String returns the string form of the device identifier.
func (id DeviceID) String() string { return string(id) }

// SessionID identifies an application session being handed between devices.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Fingerprint is a short hex digest of a device public key presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// JWK is the public half of a device key in JSON Web Key form, the shape
// peers exchange and persist. Only P-256 EC keys are used.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

// PrivateKey wraps a device's ECDSA P-256 private key. The wrapper exists so
// the identity store can persist it (as base64 SEC1 DER) without callers
// touching the encoding; treat the handle as opaque and never share it.
type PrivateKey struct {
	*ecdsa.PrivateKey
}

// MarshalJSON encodes the key as base64 SEC1 DER.
func (k PrivateKey) MarshalJSON() ([]byte, error) {
	if k.PrivateKey == nil {
		return nil, errors.New("nil private key")
	}
	der, err := x509.MarshalECPrivateKey(k.PrivateKey)
	if err != nil {
		return nil, err
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(der))
}

// UnmarshalJSON decodes a base64 SEC1 DER key.
func (k *PrivateKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	der, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	priv, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return err
	}
	k.PrivateKey = priv
	return nil
}

// DeviceKeyPair is a device's asymmetric identity. The private key never
// leaves the device; the public JWK and fingerprint may be shared and
// persisted by peers.
type DeviceKeyPair struct {
	PublicKey   JWK         `json:"publicKey"`
	PrivateKey  PrivateKey  `json:"privateKey"`
	Fingerprint Fingerprint `json:"fingerprint"`
}

// DeviceIdentity is the locally stored identity: the keypair plus the
// caller-visible device identifier.
type DeviceIdentity struct {
	DeviceID DeviceID      `json:"deviceId"`
	KeyPair  DeviceKeyPair `json:"keyPair"`
}

// DeviceRecord is what peers persist about a device: public material only.
type DeviceRecord struct {
	PublicKey   JWK         `json:"publicKey"`
	Fingerprint Fingerprint `json:"fingerprint"`
	AddedUnix   int64       `json:"added_unix"`
}
