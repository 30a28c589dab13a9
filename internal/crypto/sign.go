package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"atlas/internal/domain"
)

// sigLen is the raw r||s signature length for P-256.
const sigLen = 2 * coordLen

// Sign signs the UTF-8 bytes of data with ECDSA-SHA256 and returns the raw
// r||s signature base64 encoded. The encoding matches what WebCrypto
// producers and verifiers exchange.
func Sign(priv domain.PrivateKey, data string) (string, error) {
	if priv.PrivateKey == nil {
		return "", errors.New("nil private key")
	}
	digest := sha256.Sum256([]byte(data))
	r, s, err := ecdsa.Sign(rand.Reader, priv.PrivateKey, digest[:])
	if err != nil {
		return "", err
	}
	sig := make([]byte, sigLen)
	r.FillBytes(sig[:coordLen])
	s.FillBytes(sig[coordLen:])
	return B64(sig), nil
}

// Verify reports whether sig is a valid signature over data by the key in
// jwk. It fails closed: malformed keys, malformed signatures, and algorithm
// mismatches all return false rather than an error.
func Verify(jwk domain.JWK, sig, data string) bool {
	pub, err := PublicKeyFromJWK(jwk)
	if err != nil {
		return false
	}
	raw, err := B64Decode(sig)
	if err != nil || len(raw) != sigLen {
		return false
	}
	r := new(big.Int).SetBytes(raw[:coordLen])
	s := new(big.Int).SetBytes(raw[coordLen:])
	digest := sha256.Sum256([]byte(data))
	return ecdsa.Verify(pub, digest[:], r, s)
}
