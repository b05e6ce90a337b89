// Package errors provides the error codes used to classify failures when
// talking to AWS services. Codes are string-based for debuggability and
// natural JSON serialization in structured logs.
package errors

// ErrorCode represents a class of failure.
type ErrorCode string

const (
	// Permission errors.

	// CodeForbidden indicates the caller lacks permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the service rejected the request parameters.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Infrastructure errors.

	// CodeNetwork indicates the service could not be reached.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// System errors.

	// CodeInternal indicates the service failed while handling the request.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnavailable indicates the service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Transient reports whether failures with this code may succeed when the
// request is repeated later.
func (c ErrorCode) Transient() bool {
	switch c {
	case CodeNetwork, CodeTimeout, CodeRateLimit, CodeUnavailable, CodeInternal:
		return true
	default:
		return false
	}
}
