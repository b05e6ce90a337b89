package listkeys

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography/types"

	"github.com/sudhanraj/scp-test/services/aws/paymentcrypto"
)

// KeyLister lists every key summary in the account and region.
// *paymentcrypto.Client satisfies it.
type KeyLister interface {
	ListAllKeys(ctx context.Context) ([]types.KeySummary, error)
}

// Handler serves key listing requests. It holds no per-invocation state and
// may be invoked concurrently.
type Handler struct {
	lister KeyLister
	logger *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger. If logger is nil, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New creates a Handler backed by lister.
func New(lister KeyLister, opts ...Option) (*Handler, error) {
	if lister == nil {
		return nil, fmt.Errorf("key lister cannot be nil")
	}

	h := &Handler{lister: lister}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}

	return h, nil
}

// Handle lists all keys and returns them as an API Gateway proxy response.
// The event is accepted for compatibility with any trigger and ignored.
// The returned error is always nil; failures are reported in the envelope.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (events.APIGatewayProxyResponse, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("request_id", lc.AwsRequestID)
	}

	keys, err := h.lister.ListAllKeys(ctx)
	if err != nil {
		return h.fail(ctx, logger, err), nil
	}

	resp, err := successResponse(keys)
	if err != nil {
		return h.fail(ctx, logger, fmt.Errorf("encode response: %w", err)), nil
	}

	logger.InfoContext(ctx, "discovered payment cryptography keys",
		"count", len(keys))

	return resp, nil
}

func (h *Handler) fail(ctx context.Context, logger *slog.Logger, err error) events.APIGatewayProxyResponse {
	code := paymentcrypto.Code(err)
	logger.ErrorContext(ctx, "failed to list payment cryptography keys",
		"error", err,
		"error_code", code,
		"transient", code.Transient(),
		"service_rejected", paymentcrypto.IsServiceRejected(err))

	return failureResponse(err)
}
