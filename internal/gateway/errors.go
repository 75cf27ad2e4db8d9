package gateway

import "errors"

var (
	// ErrUnreachable is returned when the data gateway could not be reached
	// or answered with a non-success status.
	ErrUnreachable = errors.New("data gateway unreachable")

	// ErrMalformed is returned when the gateway payload is not hex text of a
	// consensus-encoded transaction.
	ErrMalformed = errors.New("malformed gateway transaction")
)
