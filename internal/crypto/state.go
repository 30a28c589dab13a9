package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"fmt"

	"atlas/internal/domain"
)

// nonceLen is the AES-GCM nonce size in bytes.
const nonceLen = 12

// EncryptState serializes state to JSON and seals it with AES-256-GCM under
// key. A fresh random nonce is drawn on every call; nonces are never reused
// under the same key.
func EncryptState(key domain.SymmetricKey, state any) (domain.EncryptedState, error) {
	aead, err := newGCM(key)
	if err != nil {
		return domain.EncryptedState{}, err
	}
	plaintext, err := json.Marshal(state)
	if err != nil {
		return domain.EncryptedState{}, err
	}
	nonce, err := RandomBytes(nonceLen)
	if err != nil {
		return domain.EncryptedState{}, err
	}
	ct := aead.Seal(nil, nonce, plaintext, nil)
	return domain.EncryptedState{IV: B64(nonce), CT: B64(ct)}, nil
}

// DecryptState opens enc under key and JSON-decodes the plaintext into out.
// Auth-tag mismatch, a wrong key, and corrupted input are hard failures
// wrapping domain.ErrDecrypt.
func DecryptState(key domain.SymmetricKey, enc domain.EncryptedState, out any) error {
	aead, err := newGCM(key)
	if err != nil {
		return err
	}
	nonce, err := B64Decode(enc.IV)
	if err != nil {
		return fmt.Errorf("%w: bad iv encoding", domain.ErrDecrypt)
	}
	if len(nonce) != nonceLen {
		return fmt.Errorf("%w: bad iv length %d", domain.ErrDecrypt, len(nonce))
	}
	ct, err := B64Decode(enc.CT)
	if err != nil {
		return fmt.Errorf("%w: bad ciphertext encoding", domain.ErrDecrypt)
	}
	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}
	return json.Unmarshal(plaintext, out)
}

func newGCM(key domain.SymmetricKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Slice())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
