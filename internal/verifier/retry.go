package verifier

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"go.uber.org/zap"
)

// RetryingResolver repeats lookups that failed with ErrUnknownChain, backing
// off exponentially between attempts. ErrUnknownOutput is final: a confirmed
// transaction will not grow outputs.
type RetryingResolver struct {
	next       Resolver
	retries    uint64
	newBackOff func() backoff.BackOff
	metrics    Metrics
	logger     *zap.Logger
}

// NewRetryingResolver wraps next with up to retries extra attempts, the first
// one after interval.
func NewRetryingResolver(next Resolver, retries int, interval time.Duration, metrics Metrics, logger *zap.Logger) (*RetryingResolver, error) {
	if next == nil {
		return nil, errors.New("resolver is required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if retries < 0 {
		retries = 0
	}
	return &RetryingResolver{
		next:    next,
		retries: uint64(retries),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = interval
			b.MaxElapsedTime = 0
			return b
		},
		metrics: metrics,
		logger:  logger.Named("retry"),
	}, nil
}

// Lookup resolves id, retrying transient failures.
func (r *RetryingResolver) Lookup(ctx context.Context, id scid.ShortChannelID) (*Funding, error) {
	var funding *Funding
	operation := func() error {
		var err error
		funding, err = r.next.Lookup(ctx, id)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrUnknownChain):
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), r.retries), ctx)
	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		r.metrics.ObserveRetry(err)
		r.logger.Debug("retrying lookup",
			zap.Stringer("scid", id),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, err
	}
	return funding, nil
}

// GetUtxo is the ChainAccess form of Lookup.
func (r *RetryingResolver) GetUtxo(ctx context.Context, _ *chainhash.Hash, shortChannelID uint64) (*wire.TxOut, error) {
	funding, err := r.Lookup(ctx, scid.ShortChannelID(shortChannelID))
	if err != nil {
		return nil, err
	}
	return funding.Output, nil
}

var (
	_ ChainAccess = (*RetryingResolver)(nil)
	_ Resolver    = (*RetryingResolver)(nil)
)
