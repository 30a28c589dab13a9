// Package commands defines the atlas CLI and wires dependencies for subcommands.
//
// Commands
//
//   - provision      Create the local device identity
//   - fingerprint    Print the device fingerprint
//   - devices        List or remove known peer devices
//   - attest         Create or verify a proximity attestation
//   - receipt        Create or verify an anchor receipt
//
// # Implementation
//
// The root command loads the optional TOML config and builds a dependency
// graph (stores, services) before any subcommand runs, so handlers share one
// app context.
package commands
