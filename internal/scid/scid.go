// Package scid packs and unpacks short channel identifiers.
//
// A short channel id names a funding output by its position in the chain:
// the block height occupies the most significant 24 bits, the transaction
// index within the block the next 24 bits and the output index the low 16
// bits.
package scid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/pkg/safe"
)

const (
	// MaxBlockHeight is the largest block height representable in a short channel id.
	MaxBlockHeight = 1<<24 - 1
	// MaxTxIndex is the largest transaction index representable in a short channel id.
	MaxTxIndex = 1<<24 - 1
	// MaxOutputIndex is the largest output index representable in a short channel id.
	MaxOutputIndex = 1<<16 - 1

	blockHeightShift = 40
	txIndexShift     = 16
	txIndexMask      = 0xffffff
	outputIndexMask  = 0xffff
)

// ShortChannelID is the compact 64-bit channel identifier.
type ShortChannelID uint64

// Decode splits id into its block height, transaction index and output index.
func Decode(id ShortChannelID) (blockHeight uint32, txIndex uint32, outputIndex uint16) {
	blockHeight = uint32(id >> blockHeightShift)
	txIndex = uint32((id >> txIndexShift) & txIndexMask)
	outputIndex = uint16(id & outputIndexMask)
	return blockHeight, txIndex, outputIndex
}

// Encode packs the coordinates into a short channel id. Heights and
// transaction indices above 2^24-1 are not representable; callers that cannot
// guarantee the range should use New.
func Encode(blockHeight, txIndex uint32, outputIndex uint16) ShortChannelID {
	return ShortChannelID(uint64(blockHeight)<<blockHeightShift |
		uint64(txIndex&txIndexMask)<<txIndexShift |
		uint64(outputIndex))
}

// New validates the coordinates and packs them into a short channel id.
func New(blockHeight, txIndex uint32, outputIndex uint16) (ShortChannelID, error) {
	if blockHeight > MaxBlockHeight {
		return 0, fmt.Errorf("block height %d exceeds %d", blockHeight, MaxBlockHeight)
	}
	if txIndex > MaxTxIndex {
		return 0, fmt.Errorf("tx index %d exceeds %d", txIndex, MaxTxIndex)
	}
	return Encode(blockHeight, txIndex, outputIndex), nil
}

// BlockHeight returns the block height encoded in id.
func (id ShortChannelID) BlockHeight() uint32 {
	h, _, _ := Decode(id)
	return h
}

// TxIndex returns the transaction index encoded in id.
func (id ShortChannelID) TxIndex() uint32 {
	_, t, _ := Decode(id)
	return t
}

// OutputIndex returns the output index encoded in id.
func (id ShortChannelID) OutputIndex() uint16 {
	_, _, o := Decode(id)
	return o
}

// String renders id in the HxTxO form, e.g. 700000x1234x1.
func (id ShortChannelID) String() string {
	h, t, o := Decode(id)
	return fmt.Sprintf("%dx%dx%d", h, t, o)
}

// Parse accepts either the decimal integer form or the HxTxO form.
func Parse(s string) (ShortChannelID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty short channel id")
	}

	parts := strings.Split(s, "x")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse short channel id %q: %w", s, err)
		}
		return ShortChannelID(v), nil
	case 3:
	default:
		return 0, fmt.Errorf("short channel id %q: want HxTxO or integer", s)
	}

	fields := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse short channel id %q: %w", s, err)
		}
		fields[i] = v
	}

	height, err := safe.Uint32(fields[0])
	if err != nil {
		return 0, fmt.Errorf("short channel id %q block height: %w", s, err)
	}
	txIndex, err := safe.Uint32(fields[1])
	if err != nil {
		return 0, fmt.Errorf("short channel id %q tx index: %w", s, err)
	}
	outputIndex, err := safe.Uint16(fields[2])
	if err != nil {
		return 0, fmt.Errorf("short channel id %q output index: %w", s, err)
	}

	return New(height, txIndex, outputIndex)
}
