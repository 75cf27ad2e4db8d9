// Package gateway fetches transactions from the REST data gateway that
// fronts a full node.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const getTransactionOperation = "get_transaction"

// Config describes how to reach the data gateway.
type Config struct {
	// Endpoint is the base URL; request paths are appended to it.
	Endpoint string
	// Timeout bounds a single request. Zero leaves requests unbounded.
	Timeout time.Duration
	// RequestsPerSecond caps the request rate. Zero or less disables the cap.
	RequestsPerSecond int
}

// Client retrieves transactions by block position. It is safe for concurrent
// use; all callers share one HTTP client and its connection pool.
type Client struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// NewClient constructs a gateway client for cfg.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("gateway metrics is required")
	}
	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return nil, err
	}

	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetHeader("Accept", "text/plain")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &Client{
		http:    httpClient,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("gateway"),
	}, nil
}

// FetchTransaction returns the transaction at txIndex within the block at
// blockHeight. Transport failures match ErrUnreachable, undecodable payloads
// match ErrMalformed. The call blocks until the gateway answers or ctx ends.
func (c *Client) FetchTransaction(ctx context.Context, blockHeight, txIndex uint32) (tx *wire.MsgTx, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(getTransactionOperation, err, started)
	}()

	logger := c.logger.With(zap.Uint32("height", blockHeight), zap.Uint32("tx_index", txIndex))

	payload, err := c.get(ctx, transactionPath(blockHeight, txIndex))
	if err != nil {
		logger.Error("couldn't find transaction: gateway request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	tx, err = DecodeTransaction(payload)
	if err != nil {
		logger.Error("couldn't find transaction: bad payload", zap.Error(err))
		return nil, err
	}

	return tx, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("GET %s: unexpected status %s", path, resp.Status())
	}
	return resp.Body(), nil
}

func transactionPath(blockHeight, txIndex uint32) string {
	return fmt.Sprintf("getTransaction/%d/%d", blockHeight, txIndex)
}

func validateEndpoint(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse gateway endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("gateway endpoint scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("gateway endpoint missing host")
	}
	return nil
}
