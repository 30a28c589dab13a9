package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"atlas/internal/domain"
	"atlas/internal/util/memzero"
)

const (
	// deviceKeySalt is the fixed HKDF salt for device session keys.
	deviceKeySalt = "atlas-device-key"

	// deviceKeyInfoPrefix domain-separates the expansion per device.
	deviceKeyInfoPrefix = "session:"
)

// DeriveDeviceSessionKey expands the session root key into an AES-256-GCM key
// scoped to deviceID.
//
// Distinct device ids yield cryptographically unrelated keys, so compromise
// of one device's session key does not expose another's. The intermediate
// copy of the root key bytes is wiped before returning.
func DeriveDeviceSessionKey(srk domain.SessionRootKey, deviceID domain.DeviceID) (domain.DeviceSessionKey, error) {
	var out domain.DeviceSessionKey
	if deviceID == "" {
		return out, fmt.Errorf("%w: empty device id", domain.ErrKeyDerivation)
	}

	ikm := make([]byte, len(srk))
	copy(ikm, srk[:])
	defer memzero.Zero(ikm)

	r := hkdf.New(sha256.New, ikm, []byte(deviceKeySalt), []byte(deviceKeyInfoPrefix+deviceID.String()))
	if _, err := io.ReadFull(r, out[:]); err != nil {
		return out, fmt.Errorf("%w: hkdf expand: %v", domain.ErrKeyDerivation, err)
	}
	return out, nil
}
