package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"atlas/internal/domain"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// Fingerprint returns a short hex fingerprint of raw public key bytes.
//
// It hashes with SHA-256 and truncates to 16 hex characters.
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:])[:fingerprintLen])
}
