package crypto_test

import (
	"testing"

	"atlas/internal/crypto"
)

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func TestGenerateDeviceKeyPair_FingerprintShape(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fp := kp.Fingerprint.String()
	if len(fp) != 16 || !isHex(fp) {
		t.Fatalf("want 16 lowercase hex chars, got %q", fp)
	}

	other, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate other: %v", err)
	}
	if other.Fingerprint == kp.Fingerprint {
		t.Fatal("independent keypairs collided on fingerprint")
	}
}

func TestJWK_RoundTrip(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	pub, err := crypto.PublicKeyFromJWK(kp.PublicKey)
	if err != nil {
		t.Fatalf("import JWK: %v", err)
	}
	jwk, raw, err := crypto.JWKFromPublic(pub)
	if err != nil {
		t.Fatalf("re-export JWK: %v", err)
	}
	if jwk != kp.PublicKey {
		t.Fatalf("JWK changed across round trip: %+v vs %+v", jwk, kp.PublicKey)
	}
	if crypto.Fingerprint(raw) != kp.Fingerprint {
		t.Fatal("fingerprint changed across round trip")
	}
}

func TestPublicKeyFromJWK_Rejects(t *testing.T) {
	kp, err := crypto.GenerateDeviceKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	wrongType := kp.PublicKey
	wrongType.Kty = "OKP"
	if _, err := crypto.PublicKeyFromJWK(wrongType); err == nil {
		t.Fatal("accepted non-EC key type")
	}

	badCoord := kp.PublicKey
	badCoord.X = "!!!not-base64url!!!"
	if _, err := crypto.PublicKeyFromJWK(badCoord); err == nil {
		t.Fatal("accepted malformed coordinate")
	}

	offCurve := kp.PublicKey
	offCurve.Y = offCurve.X // valid encoding, almost surely not on the curve
	if _, err := crypto.PublicKeyFromJWK(offCurve); err == nil {
		t.Fatal("accepted point off the curve")
	}
}

func TestGenerateDeviceID_ShapeAndIndependence(t *testing.T) {
	id, err := crypto.GenerateDeviceID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	if len(id) != 32 || !isHex(id.String()) {
		t.Fatalf("want 32 hex chars (16 bytes), got %q", id)
	}

	other, err := crypto.GenerateDeviceID()
	if err != nil {
		t.Fatalf("generate other: %v", err)
	}
	if id == other {
		t.Fatal("device ids collided")
	}
}
