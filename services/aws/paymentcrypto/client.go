package paymentcrypto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography"
	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography/types"
	"github.com/aws/smithy-go"
)

// Client lists key metadata from AWS Payment Cryptography.
//
// Thread Safety: all fields are set at construction time and never modified,
// and AWS SDK v2 clients are thread-safe, so a Client may be shared by
// concurrent invocations.
type Client struct {
	// api is the underlying Payment Cryptography client (thread-safe)
	api ListKeysAPI

	// logger is used for structured logging of operations (thread-safe)
	logger *slog.Logger

	// pageSize caps the number of keys per ListKeys page (0 = service default)
	pageSize int32
}

// NewClient creates a new Payment Cryptography client from the default AWS
// configuration chain. The context is used for configuration loading and
// should not be nil.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := NewClient(ctx,
//	    WithLogger(slog.Default()),
//	)
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	options := defaultOptions()
	applyOptions(options, opts)

	api := paymentcryptography.NewFromConfig(cfg, options.sdkOptions)

	return newClient(api, options), nil
}

// NewClientWithConfig creates a new Payment Cryptography client with a custom
// AWS configuration. The context and config parameters should not be nil.
func NewClientWithConfig(ctx context.Context, cfg *aws.Config, opts ...Option) (*Client, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("config region cannot be empty")
	}

	options := defaultOptions()
	applyOptions(options, opts)

	api := paymentcryptography.NewFromConfig(*cfg, options.sdkOptions)

	return newClient(api, options), nil
}

// NewClientWithLocalStack creates a new Payment Cryptography client configured
// for LocalStack. This is a convenience function for integration testing.
func NewClientWithLocalStack(ctx context.Context, endpointURL string, opts ...Option) (*Client, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if endpointURL == "" {
		return nil, fmt.Errorf("endpoint URL cannot be empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	opts = append(opts, WithEndpoint(endpointURL))

	return NewClientWithConfig(ctx, &cfg, opts...)
}

// NewClientWithAPI wraps an already constructed ListKeysAPI. Options that only
// affect SDK client construction (retryer, endpoint) are ignored.
func NewClientWithAPI(api ListKeysAPI, opts ...Option) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("api cannot be nil")
	}

	options := defaultOptions()
	applyOptions(options, opts)

	return newClient(api, options), nil
}

func newClient(api ListKeysAPI, options *clientOptions) *Client {
	return &Client{
		api:      api,
		logger:   options.logger,
		pageSize: options.pageSize,
	}
}

// handleError maps AWS SDK errors onto the package's typed errors while
// keeping the original API error reachable through errors.As.
func (c *Client) handleError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case AccessDeniedException:
			return fmt.Errorf("%s operation failed: %w: %w", operation, ErrAccessDenied, apiErr)
		case ThrottlingException:
			return fmt.Errorf("%s operation failed: %w: %w", operation, ErrThrottled, apiErr)
		case ServiceUnavailableException:
			return fmt.Errorf("%s operation failed: %w: %w", operation, ErrServiceUnavailable, apiErr)
		case ValidationException:
			return fmt.Errorf("%s operation failed: %w: %w", operation, ErrValidation, apiErr)
		}
		return fmt.Errorf("%s operation failed: %w", operation, apiErr)
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}

// ListAllKeys returns the summaries of every key in the account and region,
// walking all ListKeys pages. Keys are returned in the order the service
// produced them, page after page, without deduplication.
//
// The listing is all-or-nothing: if any page fails the keys fetched so far are
// discarded and the error is returned. A successful listing never returns a
// nil slice.
//
// Example usage:
//
//	keys, err := client.ListAllKeys(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(keys))
func (c *Client) ListAllKeys(ctx context.Context) ([]types.KeySummary, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if c.api == nil {
		return nil, fmt.Errorf("client is not initialized")
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "listing payment cryptography keys")
	}

	paginator := paymentcryptography.NewListKeysPaginator(c.api, &paymentcryptography.ListKeysInput{},
		func(o *paymentcryptography.ListKeysPaginatorOptions) {
			o.Limit = c.pageSize
		},
	)

	keys := make([]types.KeySummary, 0)
	for page := 1; paginator.HasMorePages(); page++ {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			if c.logger != nil {
				c.logger.DebugContext(ctx, "failed to list keys",
					"page", page,
					"error", err)
			}
			return nil, c.handleError(err, "ListKeys")
		}

		if c.logger != nil {
			c.logger.DebugContext(ctx, "fetched key page",
				"page", page,
				"page_keys", len(output.Keys))
		}

		keys = append(keys, output.Keys...)
	}

	return keys, nil
}
