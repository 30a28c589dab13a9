// Package attest issues and verifies proximity attestations.
//
// # Overview
//
// An attestation is a capability-scoped, time-and-space-bounded trust token
// for tap-to-handoff: a device signs a payload carrying a millisecond
// timestamp, a declared proximity in meters, and a random single-use token.
// The counterpart verifies it with the issuer's public JWK.
//
// # Verification
//
// Verify evaluates a single linear short-circuit chain:
//
//  1. Too old for the freshness window -> "Attestation expired"
//  2. Declared proximity over the bound -> "Device too far"
//  3. Signature does not verify         -> "Invalid signature"
//
// The default 5-second / 1.5-meter bounds are deliberately tight; stale or
// distant attestations must never be honored. Rejection is a structured
// Verification value, never an error, so callers can render the reason.
//
// # Canonical signed bytes
//
// Signatures cover the JSON encoding of the fixed payload struct, so the
// signed byte layout is the struct's declaration order. Verifiers re-marshal
// the struct rather than trusting incoming key order.
package attest
