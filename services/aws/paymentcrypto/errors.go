package paymentcrypto

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	forgeerrors "github.com/sudhanraj/scp-test/errors"
)

// AWS error code constants
const (
	AccessDeniedException       = "AccessDeniedException"
	ThrottlingException         = "ThrottlingException"
	ServiceUnavailableException = "ServiceUnavailableException"
	ValidationException         = "ValidationException"
	InternalServerException     = "InternalServerException"
)

var (
	// ErrAccessDenied is returned when the caller's credentials lack the
	// payment-cryptography:ListKeys permission.
	ErrAccessDenied = errors.New("access denied to payment cryptography keys")

	// ErrThrottled is returned when the service kept throttling the request
	// after the retryer gave up.
	ErrThrottled = errors.New("payment cryptography request throttled")

	// ErrServiceUnavailable is returned when the service reported itself
	// unavailable after all retry attempts.
	ErrServiceUnavailable = errors.New("payment cryptography service unavailable")

	// ErrValidation is returned when the service rejected the request
	// parameters.
	ErrValidation = errors.New("invalid payment cryptography request")
)

// IsServiceRejected reports whether err carries an API error returned by the
// service, as opposed to a transport failure that never produced a response.
func IsServiceRejected(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

// Code classifies err for logging. It returns an empty code for a nil error.
func Code(err error) forgeerrors.ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrAccessDenied):
		return forgeerrors.CodeForbidden
	case errors.Is(err, ErrThrottled):
		return forgeerrors.CodeRateLimit
	case errors.Is(err, ErrServiceUnavailable):
		return forgeerrors.CodeUnavailable
	case errors.Is(err, ErrValidation):
		return forgeerrors.CodeInvalidInput
	case errors.Is(err, context.DeadlineExceeded):
		return forgeerrors.CodeTimeout
	case errors.Is(err, context.Canceled):
		return forgeerrors.CodeUnknown
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		var sendErr *smithyhttp.RequestSendError
		var netErr net.Error
		if errors.As(err, &sendErr) || errors.As(err, &netErr) {
			return forgeerrors.CodeNetwork
		}
		return forgeerrors.CodeUnknown
	}

	switch apiErr.ErrorCode() {
	case AccessDeniedException:
		return forgeerrors.CodeForbidden
	case ThrottlingException:
		return forgeerrors.CodeRateLimit
	case ServiceUnavailableException:
		return forgeerrors.CodeUnavailable
	case ValidationException:
		return forgeerrors.CodeInvalidInput
	case InternalServerException:
		return forgeerrors.CodeInternal
	}
	if apiErr.ErrorFault() == smithy.FaultServer {
		return forgeerrors.CodeInternal
	}
	return forgeerrors.CodeUnknown
}
