// Package crypto exposes the primitives used by atlas.
//
// Contents
//
//   - Session root key derivation from a wallet address and signature
//     (DeriveSessionRootKey)
//   - Per-device session key expansion (DeriveDeviceSessionKey)
//   - ECDSA P-256 device keypairs with JWK export/import
//     (GenerateDeviceKeyPair, PublicKeyFromJWK)
//   - Signing and fail-closed verification over string payloads
//     (Sign, Verify)
//   - Authenticated encryption of JSON state (EncryptState, DecryptState)
//   - Base64/hex codecs and secure random nonces (B64, RandomHex)
//
// # Notes
//
// Key material uses fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on memzero when practical to reduce lifetime in memory.
package crypto
