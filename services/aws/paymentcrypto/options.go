package paymentcrypto

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography"
)

// clientOptions holds configuration options for the Payment Cryptography client.
type clientOptions struct {
	logger      *slog.Logger
	retryer     func() aws.Retryer
	maxAttempts int
	pageSize    int32
	endpoint    string
}

// Option is a functional option for configuring the Client.
type Option func(*clientOptions)

// WithLogger configures the client with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithRetryMaxAttempts sets the number of attempts made per page request.
// Values below one fall back to DefaultMaxAttempts.
func WithRetryMaxAttempts(maxAttempts int) Option {
	return func(opts *clientOptions) {
		opts.maxAttempts = maxAttempts
	}
}

// WithRetryer replaces the standard retryer with one built by newRetryer.
// If newRetryer is nil, the standard retryer is used.
func WithRetryer(newRetryer func() aws.Retryer) Option {
	return func(opts *clientOptions) {
		opts.retryer = newRetryer
	}
}

// WithPageSize limits the number of keys requested per page. Zero leaves the
// page size to the service.
func WithPageSize(pageSize int32) Option {
	return func(opts *clientOptions) {
		opts.pageSize = pageSize
	}
}

// WithEndpoint overrides the service endpoint, e.g. for LocalStack.
func WithEndpoint(url string) Option {
	return func(opts *clientOptions) {
		opts.endpoint = url
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *clientOptions {
	return &clientOptions{
		maxAttempts: DefaultMaxAttempts,
	}
}

// applyOptions applies the given options to the client options.
func applyOptions(opts *clientOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}

// newRetryer returns the retryer selected by the options.
//
//nolint:ireturn // AWS SDK v2 uses interface for flexibility and testability
func (o *clientOptions) newRetryer() aws.Retryer {
	if o.retryer != nil {
		return o.retryer()
	}
	return newStandardRetryer(o.maxAttempts)
}

// sdkOptions translates the client options into SDK client options.
func (o *clientOptions) sdkOptions(sdk *paymentcryptography.Options) {
	sdk.Retryer = o.newRetryer()
	if o.endpoint != "" {
		sdk.BaseEndpoint = aws.String(o.endpoint)
	}
}
