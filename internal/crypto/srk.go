package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"atlas/internal/domain"
)

const (
	// srkDomain separates session-root-key material from any other use of
	// the wallet signature.
	srkDomain = "atlas-session-root"

	// srkIterations is the PBKDF2 stretch count.
	srkIterations = 120_000
)

// DeriveSessionRootKey turns a wallet address and a wallet-produced signature
// into the session root key.
//
// The derivation is deterministic: identical inputs always yield the same
// key, so the SRK can be re-derived on demand instead of persisted. The
// address is lowercased first, because on-chain addresses are commonly
// displayed in mixed case.
func DeriveSessionRootKey(walletAddress, signature string) (domain.SessionRootKey, error) {
	var srk domain.SessionRootKey
	if walletAddress == "" || signature == "" {
		return srk, fmt.Errorf("%w: empty wallet address or signature", domain.ErrKeyDerivation)
	}
	addr := strings.ToLower(walletAddress)

	ikm := []byte(srkDomain + ":" + addr + ":" + signature)
	salt := []byte(srkDomain + ":salt:" + addr)

	key := pbkdf2.Key(ikm, salt, srkIterations, len(srk), sha256.New)
	copy(srk[:], key)
	return srk, nil
}
