// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds accepted by the conversions in this package.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64
}

// Uint16 converts signed or unsigned integers to uint16 with range validation.
func Uint16[T Integer](v T) (uint16, error) {
	wide, err := Uint64(v)
	if err != nil || wide > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of uint16 range", v)
	}
	return uint16(wide), nil
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	wide, err := Uint64(v)
	if err != nil || wide > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(wide), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
