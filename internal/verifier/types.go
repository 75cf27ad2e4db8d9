package verifier

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionGateway fetches a confirmed transaction by block position.
	TransactionGateway interface {
		FetchTransaction(ctx context.Context, blockHeight, txIndex uint32) (*wire.MsgTx, error)
	}
	// Resolver looks up the funding output a short channel id refers to.
	Resolver interface {
		Lookup(ctx context.Context, id scid.ShortChannelID) (*Funding, error)
	}
	// Metrics records lookup outcomes and retries.
	Metrics interface {
		ObserveLookup(err error, started time.Time)
		ObserveRetry(err error)
	}
)
