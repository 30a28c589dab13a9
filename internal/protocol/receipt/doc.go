// Package receipt issues and verifies anchor receipts.
//
// An anchor receipt is a signed claim that one device handed an application
// session to another at a point in time, optionally binding a hash of the
// transferred state. Receipts are built by the handing-off device and
// verified by anyone holding its public JWK, typically before submission to
// an external anchoring service.
//
// Verification is a linear short-circuit: freshness first ("Receipt
// expired"), then the signature over the receipt body with the signature
// field excluded ("Invalid signature"). The body is re-marshalled from the
// fixed struct, so wire key order cannot affect the outcome.
package receipt
