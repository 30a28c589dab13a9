package domain

// SymmetricKey is 32 bytes of AES-256-GCM key material. Both the session
// root key and the per-device session keys satisfy it, so the state codec
// works under either.
type SymmetricKey interface {
	Slice() []byte
}

// SessionRootKey is the symmetric key derived from a wallet address and
// wallet signature. It is ephemeral: never persisted, never transmitted,
// re-derivable on demand from the same inputs.
type SessionRootKey [32]byte

// Slice returns the key as a []byte.
func (k SessionRootKey) Slice() []byte { return k[:] }

// DeviceSessionKey is an AES-256-GCM key scoped to a single device,
// expanded from the session root key. Not persisted.
type DeviceSessionKey [32]byte

// Slice returns the key as a []byte.
func (k DeviceSessionKey) Slice() []byte { return k[:] }
