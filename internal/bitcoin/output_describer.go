package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
)

// OutputDescriber renders resolved funding outputs with script class and
// addresses encoded for one network.
type OutputDescriber struct {
	params *chaincfg.Params
}

// NewOutputDescriber initializes a describer using params of the provided network.
func NewOutputDescriber(network model.Network) (*OutputDescriber, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return NewOutputDescriberForParams(params), nil
}

// NewOutputDescriberForParams builds a describer from already resolved chain params.
func NewOutputDescriberForParams(params *chaincfg.Params) *OutputDescriber {
	return &OutputDescriber{params: params}
}

// Describe converts funding into its display form.
func (d *OutputDescriber) Describe(funding *verifier.Funding) (model.FundingOutput, error) {
	if funding == nil || funding.Output == nil {
		return model.FundingOutput{}, fmt.Errorf("funding output is missing")
	}

	height, txIndex, outputIndex := scid.Decode(funding.ChannelID)
	script := funding.Output.PkScript

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return model.FundingOutput{}, fmt.Errorf("extract addresses for %s: %w", funding.ChannelID, err)
	}

	addresses := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		addresses = append(addresses, addr.EncodeAddress())
	}

	return model.FundingOutput{
		ShortChannelID: funding.ChannelID.String(),
		BlockHeight:    height,
		TxIndex:        txIndex,
		OutputIndex:    outputIndex,
		TxID:           funding.TxID.String(),
		ValueSat:       funding.Output.Value,
		Value:          btcutil.Amount(funding.Output.Value).String(),
		ScriptHex:      hex.EncodeToString(script),
		ScriptClass:    class.String(),
		Addresses:      addresses,
	}, nil
}
