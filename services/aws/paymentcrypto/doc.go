// Package paymentcrypto provides a small, testable client for AWS Payment
// Cryptography key discovery featuring structured logging and a configurable
// retry policy.
//
// The client wraps the AWS SDK v2 `paymentcryptography` service to provide:
//   - A single operation, ListAllKeys, that walks every ListKeys page and
//     returns the concatenated key summaries in fetch order
//   - The SDK standard retryer capped at six attempts by default, since the
//     Payment Cryptography control plane throttles aggressively
//   - Typed errors (`ErrAccessDenied`, `ErrThrottled`, `ErrServiceUnavailable`)
//     that keep the underlying smithy API error reachable via errors.As
//
// # IAM permissions
//
// Listing keys requires `payment-cryptography:ListKeys` on `*`.
//
// # Thread safety
//
// A Client is immutable after construction and safe for concurrent use. The
// underlying SDK client is thread-safe, so a single Client is meant to be built
// once per process and shared across Lambda invocations.
package paymentcrypto
