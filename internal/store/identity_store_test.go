package store_test

import (
	"errors"
	"testing"

	"atlas/internal/crypto"
	"atlas/internal/domain"
	"atlas/internal/store"
)

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "correct horse battery staple"

	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}
	id := domain.DeviceIdentity{DeviceID: "dev-A", KeyPair: kp}

	if err := ids.SaveIdentity(pass, id); err != nil {
		t.Fatalf("save identity: %v", err)
	}

	got, err := ids.LoadIdentity(pass)
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if got.DeviceID != id.DeviceID || got.KeyPair.Fingerprint != id.KeyPair.Fingerprint {
		t.Fatal("mismatch after load")
	}

	// The private key survives the round trip and still signs.
	sig, err := crypto.Sign(got.KeyPair.PrivateKey, "probe")
	if err != nil {
		t.Fatalf("sign with loaded key: %v", err)
	}
	if !crypto.Verify(id.KeyPair.PublicKey, sig, "probe") {
		t.Fatal("loaded private key no longer matches the public key")
	}
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}
	if err := ids.SaveIdentity("correct", domain.DeviceIdentity{DeviceID: "dev-A", KeyPair: kp}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if _, err := ids.LoadIdentity("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestIdentity_Missing_ReportsNoIdentity(t *testing.T) {
	var ids domain.IdentityStore = store.NewIdentityFileStore(t.TempDir())
	if _, err := ids.LoadIdentity("any"); !errors.Is(err, domain.ErrNoIdentity) {
		t.Fatalf("want ErrNoIdentity, got %v", err)
	}
}
