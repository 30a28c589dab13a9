package receipt_test

import (
	"encoding/base64"
	"testing"
	"time"

	"atlas/internal/crypto"
	"atlas/internal/protocol/receipt"
)

func TestIssueVerify_OK(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rcpt, err := receipt.Issue(kp.PrivateKey, "sess-1", "dev-A", "dev-B", "abc123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(rcpt.ReceiptID) != 32 {
		t.Fatalf("want 32 hex char receipt id, got %q", rcpt.ReceiptID)
	}

	res := receipt.Verify(rcpt, kp.PublicKey, receipt.Options{})
	if !res.Valid {
		t.Fatalf("fresh receipt rejected: %s", res.Reason)
	}
}

func TestIssueVerify_NoStateHash(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rcpt, err := receipt.Issue(kp.PrivateKey, "sess-1", "dev-A", "dev-B", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if res := receipt.Verify(rcpt, kp.PublicKey, receipt.Options{}); !res.Valid {
		t.Fatalf("receipt without state hash rejected: %s", res.Reason)
	}
}

func TestVerify_ExpiredBeforeSignature(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rcpt, err := receipt.Issue(kp.PrivateKey, "sess-1", "dev-A", "dev-B", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Even a correctly signed receipt is rejected once stale, and expiry
	// wins over any signature problem.
	rcpt.Signature = "garbage"
	later := time.Now().Add(31 * time.Second)
	res := receipt.Verify(rcpt, kp.PublicKey, receipt.Options{Now: func() time.Time { return later }})
	if res.Valid || res.Reason != receipt.ReasonExpired {
		t.Fatalf("want {false, %q}, got %+v", receipt.ReasonExpired, res)
	}
}

func TestVerify_TamperedField(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rcpt, err := receipt.Issue(kp.PrivateKey, "sess-1", "dev-A", "dev-B", "abc123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rcpt.ToDevice = "dev-C"

	res := receipt.Verify(rcpt, kp.PublicKey, receipt.Options{})
	if res.Valid || res.Reason != receipt.ReasonBadSignature {
		t.Fatalf("want {false, %q}, got %+v", receipt.ReasonBadSignature, res)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rcpt, err := receipt.Issue(kp.PrivateKey, "sess-1", "dev-A", "dev-B", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(rcpt.Signature)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	raw[0] ^= 0xff
	rcpt.Signature = base64.StdEncoding.EncodeToString(raw)

	res := receipt.Verify(rcpt, kp.PublicKey, receipt.Options{})
	if res.Valid || res.Reason != receipt.ReasonBadSignature {
		t.Fatalf("want {false, %q}, got %+v", receipt.ReasonBadSignature, res)
	}
}
