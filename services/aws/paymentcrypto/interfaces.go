package paymentcrypto

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography"
)

// ListKeysAPI defines the subset of the AWS Payment Cryptography client used by
// this package. It matches paymentcryptography.ListKeysAPIClient so the SDK
// paginator can drive it, and lets tests substitute a fake.
type ListKeysAPI interface {
	// ListKeys returns one page of key summaries.
	ListKeys(
		ctx context.Context,
		params *paymentcryptography.ListKeysInput,
		optFns ...func(*paymentcryptography.Options),
	) (*paymentcryptography.ListKeysOutput, error)
}

var _ paymentcryptography.ListKeysAPIClient = (ListKeysAPI)(nil)
