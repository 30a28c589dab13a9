package domain

// AttestationPayload is the signed body of a proximity attestation. Field
// order is fixed: signatures cover the JSON encoding of this struct, so the
// declaration order is the canonical encoding order.
type AttestationPayload struct {
	TS              int64   `json:"ts"`
	ProximityMeters float64 `json:"proximityMeters"`
	Token           string  `json:"token"`
}

// ProximityAttestation is a short-lived, distance-bounded signed claim of
// physical proximity. Single-use in intent; the token is random per issue.
type ProximityAttestation struct {
	Payload   AttestationPayload `json:"payload"`
	Signature string             `json:"signature"`
}

// AnchorReceipt is a signed claim that fromDevice handed session sessionId
// to toDevice at time ts, optionally binding a state hash.
type AnchorReceipt struct {
	ReceiptID  string    `json:"receiptId"`
	SessionID  SessionID `json:"sessionId"`
	FromDevice DeviceID  `json:"fromDevice"`
	ToDevice   DeviceID  `json:"toDevice"`
	TS         int64     `json:"ts"`
	StateHash  string    `json:"stateHash,omitempty"`
	Signature  string    `json:"signature"`
}

// EncryptedState is an AES-GCM sealed JSON value: base64 12-byte nonce and
// base64 ciphertext.
type EncryptedState struct {
	IV string `json:"iv"`
	CT string `json:"ct"`
}

// Verification is the structured outcome of attestation/receipt checks.
// Rejection is a value, never an error, so callers can surface Reason.
type Verification struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
