// Package store provides durable persistence for atlas key material.
//
// It contains concrete implementations of the domain storage interfaces:
//
//   - Local device identity, encrypted at rest with a passphrase
//     (IdentityFileStore)
//   - Known peer device public keys and fingerprints, as a JSON map file
//     (DeviceKeyFileStore) or a transactional SQLite table
//     (DeviceKeySQLiteStore)
//
// File-backed stores serialise as JSON under the configured home directory
// and are concurrency-safe within a process via internal locking; writes go
// through a temp file and rename. The SQLite store additionally survives
// concurrent writers across processes, which the map file cannot.
package store
