// Package identity provisions and inspects the local device identity.
//
// Provisioning generates the ECDSA device keypair and an independent random
// device id, seals both under the caller's passphrase, and registers the
// public record (JWK + fingerprint) with the device key store so peers can
// be verified later.
package identity
