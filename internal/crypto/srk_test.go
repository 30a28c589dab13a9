package crypto_test

import (
	"errors"
	"testing"

	"atlas/internal/crypto"
	"atlas/internal/domain"
)

func TestDeriveSessionRootKey_Deterministic(t *testing.T) {
	addr := "0x11111111111111111111111111111111111111"
	sig := "0xsigned-session-bootstrap-message"

	a, err := crypto.DeriveSessionRootKey(addr, sig)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	b, err := crypto.DeriveSessionRootKey(addr, sig)
	if err != nil {
		t.Fatalf("derive again: %v", err)
	}

	// Interchangeable: ciphertext under one opens under the other.
	enc, err := crypto.EncryptState(a, map[string]string{"foo": "bar"})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	var out map[string]string
	if err := crypto.DecryptState(b, enc, &out); err != nil {
		t.Fatalf("decrypt under re-derived key: %v", err)
	}
	if out["foo"] != "bar" {
		t.Fatalf("want foo=bar, got %v", out)
	}
}

func TestDeriveSessionRootKey_CaseInsensitiveAddress(t *testing.T) {
	sig := "0xsigned-session-bootstrap-message"

	upper, err := crypto.DeriveSessionRootKey("0xABCDEF0123456789ABCDEF0123456789ABCDEF01", sig)
	if err != nil {
		t.Fatalf("derive upper: %v", err)
	}
	lower, err := crypto.DeriveSessionRootKey("0xabcdef0123456789abcdef0123456789abcdef01", sig)
	if err != nil {
		t.Fatalf("derive lower: %v", err)
	}

	enc, err := crypto.EncryptState(upper, "state")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	var out string
	if err := crypto.DecryptState(lower, enc, &out); err != nil {
		t.Fatalf("mixed-case address changed the key: %v", err)
	}
}

func TestDeriveSessionRootKey_DifferentSignatures(t *testing.T) {
	addr := "0x11111111111111111111111111111111111111"

	a, _ := crypto.DeriveSessionRootKey(addr, "sig-one")
	b, _ := crypto.DeriveSessionRootKey(addr, "sig-two")
	if a == b {
		t.Fatal("distinct signatures produced the same root key")
	}
}

func TestDeriveSessionRootKey_EmptyInputs(t *testing.T) {
	if _, err := crypto.DeriveSessionRootKey("", "sig"); !errors.Is(err, domain.ErrKeyDerivation) {
		t.Fatalf("want ErrKeyDerivation, got %v", err)
	}
	if _, err := crypto.DeriveSessionRootKey("0xabc", ""); !errors.Is(err, domain.ErrKeyDerivation) {
		t.Fatalf("want ErrKeyDerivation, got %v", err)
	}
}

func TestDeriveDeviceSessionKey_DomainSeparation(t *testing.T) {
	srk, err := crypto.DeriveSessionRootKey("0xabc", "sig")
	if err != nil {
		t.Fatalf("derive srk: %v", err)
	}

	a, err := crypto.DeriveDeviceSessionKey(srk, "dev-A")
	if err != nil {
		t.Fatalf("derive dev-A: %v", err)
	}
	b, err := crypto.DeriveDeviceSessionKey(srk, "dev-B")
	if err != nil {
		t.Fatalf("derive dev-B: %v", err)
	}
	if a == b {
		t.Fatal("distinct device ids produced the same session key")
	}

	again, err := crypto.DeriveDeviceSessionKey(srk, "dev-A")
	if err != nil {
		t.Fatalf("derive dev-A again: %v", err)
	}
	if a != again {
		t.Fatal("device key derivation is not deterministic")
	}
}

func TestDeriveDeviceSessionKey_EmptyDeviceID(t *testing.T) {
	var srk domain.SessionRootKey
	if _, err := crypto.DeriveDeviceSessionKey(srk, ""); !errors.Is(err, domain.ErrKeyDerivation) {
		t.Fatalf("want ErrKeyDerivation, got %v", err)
	}
}
