package domain

import "errors"

var (
	// ErrKeyDerivation covers malformed inputs or crypto failures while
	// deriving the session root key, device session keys, or keypairs.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecrypt is returned when authenticated decryption fails: wrong key,
	// auth-tag mismatch, or corrupted input. There is no partial success.
	ErrDecrypt = errors.New("state decryption failed")

	// ErrNoIdentity is returned when no device identity has been provisioned.
	ErrNoIdentity = errors.New("no device identity provisioned")

	// ErrSessionClosed is returned when a session context is used after Close.
	ErrSessionClosed = errors.New("session context closed")
)
