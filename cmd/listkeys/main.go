// Command listkeys is an AWS Lambda function that lists the AWS Payment
// Cryptography keys visible to its execution role and returns them as an API
// Gateway proxy response.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/sudhanraj/scp-test/lambda/listkeys"
	"github.com/sudhanraj/scp-test/services/aws/paymentcrypto"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))

	// The client is built once per runtime instance and shared by every
	// invocation it serves.
	client, err := paymentcrypto.NewClient(context.Background(), cfg.ClientOptions(logger)...)
	if err != nil {
		logger.Error("failed to create payment cryptography client", "error", err)
		os.Exit(1)
	}

	handler, err := listkeys.New(client, listkeys.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		os.Exit(1)
	}

	lambda.Start(handler.Handle)
}
