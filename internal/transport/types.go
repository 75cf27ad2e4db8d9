package transport

import (
	"context"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// GatewayProbe is the part of the data gateway Health relies on.
	GatewayProbe interface {
		FetchTransaction(ctx context.Context, blockHeight, txIndex uint32) (*wire.MsgTx, error)
	}
	// Resolver looks up the funding output of a short channel id.
	Resolver interface {
		Lookup(ctx context.Context, id scid.ShortChannelID) (*verifier.Funding, error)
	}
	// OutputDescriber renders a resolved funding output for responses.
	OutputDescriber interface {
		Describe(funding *verifier.Funding) (model.FundingOutput, error)
	}
)
