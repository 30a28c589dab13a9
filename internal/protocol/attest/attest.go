package attest

import (
	"encoding/json"
	"time"

	"atlas/internal/crypto"
	"atlas/internal/domain"
)

const (
	// DefaultFreshnessWindow is the maximum accepted attestation age.
	DefaultFreshnessWindow = 5 * time.Second

	// DefaultMaxProximityMeters is the maximum accepted declared distance.
	DefaultMaxProximityMeters = 1.5

	// tokenBytes of randomness back each attestation token.
	tokenBytes = 8
)

// Rejection reasons surfaced to callers.
const (
	ReasonExpired      = "Attestation expired"
	ReasonTooFar       = "Device too far"
	ReasonBadSignature = "Invalid signature"
)

// Options bound a verification. Zero values fall back to the defaults; Now
// exists so tests can drive the clock.
type Options struct {
	FreshnessWindow    time.Duration
	MaxProximityMeters float64
	Now                func() time.Time
}

func (o Options) normalized() Options {
	if o.FreshnessWindow <= 0 {
		o.FreshnessWindow = DefaultFreshnessWindow
	}
	if o.MaxProximityMeters <= 0 {
		o.MaxProximityMeters = DefaultMaxProximityMeters
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Issue builds and signs a proximity attestation for the declared distance.
func Issue(priv domain.PrivateKey, proximityMeters float64) (domain.ProximityAttestation, error) {
	token, err := crypto.RandomHex(tokenBytes)
	if err != nil {
		return domain.ProximityAttestation{}, err
	}
	payload := domain.AttestationPayload{
		TS:              time.Now().UnixMilli(),
		ProximityMeters: proximityMeters,
		Token:           token,
	}
	signed, err := json.Marshal(payload)
	if err != nil {
		return domain.ProximityAttestation{}, err
	}
	sig, err := crypto.Sign(priv, string(signed))
	if err != nil {
		return domain.ProximityAttestation{}, err
	}
	return domain.ProximityAttestation{Payload: payload, Signature: sig}, nil
}

// Verify checks att against the issuer's public JWK. It is pure and
// stateless; every failure is reported as a Verification value.
func Verify(att domain.ProximityAttestation, pub domain.JWK, opts Options) domain.Verification {
	opts = opts.normalized()

	age := opts.Now().UnixMilli() - att.Payload.TS
	if age > opts.FreshnessWindow.Milliseconds() {
		return domain.Verification{Reason: ReasonExpired}
	}
	if att.Payload.ProximityMeters > opts.MaxProximityMeters {
		return domain.Verification{Reason: ReasonTooFar}
	}
	signed, err := json.Marshal(att.Payload)
	if err != nil || !crypto.Verify(pub, att.Signature, string(signed)) {
		return domain.Verification{Reason: ReasonBadSignature}
	}
	return domain.Verification{Valid: true}
}
