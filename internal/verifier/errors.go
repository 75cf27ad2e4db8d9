package verifier

import "errors"

var (
	// ErrUnknownChain is returned when no usable transaction could be
	// obtained for the block position encoded in a short channel id. It
	// covers missing transactions as well as transport and decode failures.
	ErrUnknownChain = errors.New("unknown chain")

	// ErrUnknownOutput is returned when the transaction exists but has no
	// output at the requested index.
	ErrUnknownOutput = errors.New("unknown output")
)
