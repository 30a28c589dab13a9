package receipt

import (
	"encoding/json"
	"time"

	"atlas/internal/crypto"
	"atlas/internal/domain"
)

const (
	// DefaultFreshnessWindow is the maximum accepted receipt age.
	DefaultFreshnessWindow = 30 * time.Second

	// receiptIDBytes of randomness back each receipt identifier.
	receiptIDBytes = 16
)

// Rejection reasons surfaced to callers.
const (
	ReasonExpired      = "Receipt expired"
	ReasonBadSignature = "Invalid signature"
)

// Options bound a verification. Zero values fall back to the defaults; Now
// exists so tests can drive the clock.
type Options struct {
	FreshnessWindow time.Duration
	Now             func() time.Time
}

func (o Options) normalized() Options {
	if o.FreshnessWindow <= 0 {
		o.FreshnessWindow = DefaultFreshnessWindow
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// body is the signed portion of a receipt: every field except the signature,
// in the canonical declaration order.
type body struct {
	ReceiptID  string           `json:"receiptId"`
	SessionID  domain.SessionID `json:"sessionId"`
	FromDevice domain.DeviceID  `json:"fromDevice"`
	ToDevice   domain.DeviceID  `json:"toDevice"`
	TS         int64            `json:"ts"`
	StateHash  string           `json:"stateHash,omitempty"`
}

func bodyOf(r domain.AnchorReceipt) body {
	return body{
		ReceiptID:  r.ReceiptID,
		SessionID:  r.SessionID,
		FromDevice: r.FromDevice,
		ToDevice:   r.ToDevice,
		TS:         r.TS,
		StateHash:  r.StateHash,
	}
}

// Issue builds and signs an anchor receipt claiming that from handed session
// to to at the current time. stateHash may be empty.
func Issue(priv domain.PrivateKey, session domain.SessionID, from, to domain.DeviceID, stateHash string) (domain.AnchorReceipt, error) {
	id, err := crypto.RandomHex(receiptIDBytes)
	if err != nil {
		return domain.AnchorReceipt{}, err
	}
	b := body{
		ReceiptID:  id,
		SessionID:  session,
		FromDevice: from,
		ToDevice:   to,
		TS:         time.Now().UnixMilli(),
		StateHash:  stateHash,
	}
	signed, err := json.Marshal(b)
	if err != nil {
		return domain.AnchorReceipt{}, err
	}
	sig, err := crypto.Sign(priv, string(signed))
	if err != nil {
		return domain.AnchorReceipt{}, err
	}
	return domain.AnchorReceipt{
		ReceiptID:  b.ReceiptID,
		SessionID:  b.SessionID,
		FromDevice: b.FromDevice,
		ToDevice:   b.ToDevice,
		TS:         b.TS,
		StateHash:  b.StateHash,
		Signature:  sig,
	}, nil
}

// Verify checks rcpt against the issuer's public JWK: freshness first, then
// the signature over the reconstructed body.
func Verify(rcpt domain.AnchorReceipt, pub domain.JWK, opts Options) domain.Verification {
	opts = opts.normalized()

	age := opts.Now().UnixMilli() - rcpt.TS
	if age > opts.FreshnessWindow.Milliseconds() {
		return domain.Verification{Reason: ReasonExpired}
	}
	signed, err := json.Marshal(bodyOf(rcpt))
	if err != nil || !crypto.Verify(pub, rcpt.Signature, string(signed)) {
		return domain.Verification{Reason: ReasonBadSignature}
	}
	return domain.Verification{Valid: true}
}
