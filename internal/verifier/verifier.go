// Package verifier resolves short channel ids into the on-chain outputs that
// fund them.
package verifier

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"go.uber.org/zap"
)

// ChainAccess is the capability a channel graph uses to check that an
// announced channel is backed by a real funding output.
type ChainAccess interface {
	GetUtxo(ctx context.Context, genesisHash *chainhash.Hash, shortChannelID uint64) (*wire.TxOut, error)
}

// Funding is a resolved funding output together with its location.
type Funding struct {
	ChannelID scid.ShortChannelID
	TxID      chainhash.Hash
	Output    *wire.TxOut
}

// Verifier resolves short channel ids against a transaction gateway. It keeps
// no state between calls and is safe for concurrent use.
type Verifier struct {
	gateway TransactionGateway
	metrics Metrics
	logger  *zap.Logger
}

// New constructs a Verifier over gateway.
func New(gateway TransactionGateway, metrics Metrics, logger *zap.Logger) (*Verifier, error) {
	if gateway == nil {
		return nil, errors.New("transaction gateway is required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	return &Verifier{
		gateway: gateway,
		metrics: metrics,
		logger:  logger.Named("verifier"),
	}, nil
}

// GetUtxo returns a copy of the output shortChannelID refers to.
// genesisHash is accepted for interface compatibility only; the verifier
// serves whichever chain its gateway is connected to.
func (v *Verifier) GetUtxo(ctx context.Context, _ *chainhash.Hash, shortChannelID uint64) (*wire.TxOut, error) {
	funding, err := v.Lookup(ctx, scid.ShortChannelID(shortChannelID))
	if err != nil {
		return nil, err
	}
	return funding.Output, nil
}

// Lookup fetches the transaction id points at and returns a copy of the
// referenced output. Failures are logged and reported as ErrUnknownChain or
// ErrUnknownOutput only.
func (v *Verifier) Lookup(ctx context.Context, id scid.ShortChannelID) (funding *Funding, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveLookup(err, started)
	}()

	height, txIndex, outputIndex := scid.Decode(id)

	tx, err := v.gateway.FetchTransaction(ctx, height, txIndex)
	if err != nil {
		v.logger.Warn("couldn't find transaction",
			zap.Stringer("scid", id),
			zap.Uint32("height", height),
			zap.Uint32("tx_index", txIndex),
			zap.Error(err),
		)
		return nil, ErrUnknownChain
	}

	txid := tx.TxHash()
	if int(outputIndex) >= len(tx.TxOut) {
		v.logger.Warn("output index out of bounds",
			zap.Stringer("scid", id),
			zap.Uint16("output_index", outputIndex),
			zap.Int("output_count", len(tx.TxOut)),
			zap.Stringer("txid", txid),
		)
		return nil, ErrUnknownOutput
	}

	return &Funding{
		ChannelID: id,
		TxID:      txid,
		Output:    copyTxOut(tx.TxOut[outputIndex]),
	}, nil
}

func copyTxOut(out *wire.TxOut) *wire.TxOut {
	return wire.NewTxOut(out.Value, bytes.Clone(out.PkScript))
}

var (
	_ ChainAccess = (*Verifier)(nil)
	_ Resolver    = (*Verifier)(nil)
)
