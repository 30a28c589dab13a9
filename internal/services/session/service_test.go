package session_test

import (
	"errors"
	"testing"

	"atlas/internal/domain"
	"atlas/internal/services/session"
)

// Full bootstrap scenario: wallet signature in, per-device state codec out.
func TestBootstrap_EncryptDecryptState(t *testing.T) {
	addr := "0x11111111111111111111111111111111111111"
	sig := "0xsigned-bootstrap-message"

	ctx, err := session.Bootstrap(addr, sig)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer ctx.Close()

	enc, err := ctx.EncryptState("dev-A", map[string]string{"foo": "bar"})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var out map[string]string
	if err := ctx.DecryptState("dev-A", enc, &out); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if out["foo"] != "bar" {
		t.Fatalf("want foo=bar, got %v", out)
	}

	// Another device's key cannot open the blob.
	if err := ctx.DecryptState("dev-B", enc, &out); !errors.Is(err, domain.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt under dev-B key, got %v", err)
	}
}

func TestBootstrap_RederivedContextInteroperates(t *testing.T) {
	addr := "0xAbCd000000000000000000000000000000000001"
	sig := "0xsig"

	first, err := session.Bootstrap(addr, sig)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	enc, err := first.EncryptState("dev-A", "state")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	first.Close()

	// Same wallet inputs, fresh context: decryption still works.
	second, err := session.Bootstrap(addr, sig)
	if err != nil {
		t.Fatalf("re-bootstrap: %v", err)
	}
	defer second.Close()

	var out string
	if err := second.DecryptState("dev-A", enc, &out); err != nil {
		t.Fatalf("decrypt under re-derived context: %v", err)
	}
	if out != "state" {
		t.Fatalf("want %q, got %q", "state", out)
	}
}

func TestContext_ClosedIsUnusable(t *testing.T) {
	ctx, err := session.Bootstrap("0xabc", "sig")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	ctx.Close()
	ctx.Close() // double close is a no-op

	if _, err := ctx.DeviceKey("dev-A"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("want ErrSessionClosed, got %v", err)
	}
	if _, err := ctx.EncryptState("dev-A", "x"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("want ErrSessionClosed from EncryptState, got %v", err)
	}
}
