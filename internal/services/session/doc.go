// Package session scopes the session root key to an explicit context value.
//
// Bootstrap derives the SRK from a wallet address and signature and returns
// a Context the caller owns. The key lives only inside the Context: it is
// handed out as per-device session keys on demand and wiped when Close is
// called. There is no ambient or cached key state anywhere in the module.
package session
