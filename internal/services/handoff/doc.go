// Package handoff orchestrates device-to-device handoff artifacts.
//
// It loads the local identity to issue proximity attestations and anchor
// receipts, and resolves peer public keys from the device key store to
// verify artifacts received from the counterpart device.
package handoff
