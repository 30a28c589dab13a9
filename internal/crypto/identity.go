package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"atlas/internal/domain"
)

const (
	jwkKeyType = "EC"
	jwkCurve   = "P-256"

	// coordLen is the byte length of a P-256 coordinate.
	coordLen = 32

	// deviceIDBytes of randomness back each device identifier.
	deviceIDBytes = 16
)

// GenerateDeviceKeyPair creates a fresh ECDSA P-256 device keypair. The
// public half is exported as a JWK; the fingerprint is computed over the
// uncompressed raw point.
func GenerateDeviceKeyPair() (domain.DeviceKeyPair, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return domain.DeviceKeyPair{}, fmt.Errorf("%w: generate keypair: %v", domain.ErrKeyDerivation, err)
	}
	jwk, raw, err := JWKFromPublic(&priv.PublicKey)
	if err != nil {
		return domain.DeviceKeyPair{}, fmt.Errorf("%w: export public key: %v", domain.ErrKeyDerivation, err)
	}
	return domain.DeviceKeyPair{
		PublicKey:   jwk,
		PrivateKey:  domain.PrivateKey{PrivateKey: priv},
		Fingerprint: Fingerprint(raw),
	}, nil
}

// GenerateDeviceID returns a random 16-byte hex device identifier. It is not
// derived from the keypair or fingerprint.
func GenerateDeviceID() (domain.DeviceID, error) {
	id, err := RandomHex(deviceIDBytes)
	if err != nil {
		return "", err
	}
	return domain.DeviceID(id), nil
}

// JWKFromPublic exports a P-256 public key as a JWK together with its
// uncompressed raw point bytes.
func JWKFromPublic(pub *ecdsa.PublicKey) (domain.JWK, []byte, error) {
	if pub == nil || pub.Curve != elliptic.P256() {
		return domain.JWK{}, nil, errors.New("public key is not P-256")
	}
	ecdhPub, err := pub.ECDH()
	if err != nil {
		return domain.JWK{}, nil, err
	}
	x := pub.X.FillBytes(make([]byte, coordLen))
	y := pub.Y.FillBytes(make([]byte, coordLen))
	jwk := domain.JWK{
		Kty: jwkKeyType,
		Crv: jwkCurve,
		X:   base64.RawURLEncoding.EncodeToString(x),
		Y:   base64.RawURLEncoding.EncodeToString(y),
	}
	return jwk, ecdhPub.Bytes(), nil
}

// PublicKeyFromJWK imports a P-256 public key from its JWK form, rejecting
// wrong key types, malformed coordinates, and points off the curve.
func PublicKeyFromJWK(jwk domain.JWK) (*ecdsa.PublicKey, error) {
	if jwk.Kty != jwkKeyType || jwk.Crv != jwkCurve {
		return nil, fmt.Errorf("unsupported key type %q/%q", jwk.Kty, jwk.Crv)
	}
	x, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, err
	}
	y, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, err
	}
	if len(x) != coordLen || len(y) != coordLen {
		return nil, errors.New("malformed JWK coordinates")
	}
	pub := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}
	// ECDH conversion validates the point is on the curve.
	if _, err := pub.ECDH(); err != nil {
		return nil, err
	}
	return pub, nil
}
