package model

// FundingOutput describes the output a short channel id points at, in a form
// ready for JSON rendering and logging.
type FundingOutput struct {
	ShortChannelID string   `json:"short_channel_id"`
	BlockHeight    uint32   `json:"block_height"`
	TxIndex        uint32   `json:"tx_index"`
	OutputIndex    uint16   `json:"output_index"`
	TxID           string   `json:"txid"`
	ValueSat       int64    `json:"value_sat"`
	Value          string   `json:"value"`
	ScriptHex      string   `json:"script_hex"`
	ScriptClass    string   `json:"script_class"`
	Addresses      []string `json:"addresses,omitempty"`
}
