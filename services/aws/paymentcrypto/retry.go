package paymentcrypto

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
)

// DefaultMaxAttempts is the number of attempts, including the first one, made
// for each ListKeys page before the error is surfaced.
const DefaultMaxAttempts = 6

// newStandardRetryer creates the SDK standard retryer used for Payment
// Cryptography calls.
//
// Returns a retryer configured with:
// - maxAttempts attempts (including the initial attempt), DefaultMaxAttempts if not positive
// - The SDK default exponential backoff with jitter
// - ServiceUnavailableException treated as retryable in addition to the SDK defaults
//
//nolint:ireturn // AWS SDK v2 uses interface for flexibility and testability
func newStandardRetryer(maxAttempts int) aws.Retryer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = maxAttempts
		o.Retryables = append(o.Retryables, retry.RetryableErrorCode{
			Codes: map[string]struct{}{
				ServiceUnavailableException: {},
			},
		})
	})
}
