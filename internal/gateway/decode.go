package gateway

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/btcsuite/btcd/wire"
)

// DecodeTransaction turns a gateway payload (hex text of a serialized
// transaction) into a transaction. Every failure matches ErrMalformed.
func DecodeTransaction(payload []byte) (*wire.MsgTx, error) {
	if !utf8.Valid(payload) {
		return nil, fmt.Errorf("%w: payload is not utf-8 text", ErrMalformed)
	}

	raw, err := hex.DecodeString(strings.TrimSpace(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %w", ErrMalformed, err)
	}

	tx := &wire.MsgTx{}
	r := bytes.NewReader(raw)
	if err := tx.Deserialize(r); err != nil {
		return nil, fmt.Errorf("%w: deserialize transaction: %w", ErrMalformed, err)
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after transaction", ErrMalformed, r.Len())
	}

	return tx, nil
}
