package session

import (
	"sync"

	"atlas/internal/crypto"
	"atlas/internal/domain"
	"atlas/internal/util/memzero"
)

// Context holds the session root key for the duration of a bootstrapping
// session. Callers must Close it when their scope ends; Close wipes the key.
// A Context is safe for concurrent use.
type Context struct {
	mu     sync.Mutex
	srk    domain.SessionRootKey
	closed bool
}

// Bootstrap derives the session root key from the wallet address and
// signature and returns a Context owning it.
func Bootstrap(walletAddress, signature string) (*Context, error) {
	srk, err := crypto.DeriveSessionRootKey(walletAddress, signature)
	if err != nil {
		return nil, err
	}
	return &Context{srk: srk}, nil
}

// DeviceKey derives the session key for deviceID from the held root key.
func (c *Context) DeviceKey(deviceID domain.DeviceID) (domain.DeviceSessionKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.DeviceSessionKey{}, domain.ErrSessionClosed
	}
	return crypto.DeriveDeviceSessionKey(c.srk, deviceID)
}

// EncryptState seals state under the session key for deviceID.
func (c *Context) EncryptState(deviceID domain.DeviceID, state any) (domain.EncryptedState, error) {
	key, err := c.DeviceKey(deviceID)
	if err != nil {
		return domain.EncryptedState{}, err
	}
	return crypto.EncryptState(key, state)
}

// DecryptState opens enc under the session key for deviceID into out.
func (c *Context) DecryptState(deviceID domain.DeviceID, enc domain.EncryptedState, out any) error {
	key, err := c.DeviceKey(deviceID)
	if err != nil {
		return err
	}
	return crypto.DecryptState(key, enc, out)
}

// Close wipes the root key. Further use returns domain.ErrSessionClosed;
// closing twice is a no-op.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	memzero.Zero(c.srk[:])
	c.closed = true
}
