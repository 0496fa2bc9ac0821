// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// BigToUint64 converts a big.Int to uint64, rejecting nil, negative and oversized values.
func BigToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, errors.New("value is nil, cannot convert to uint64")
	}

	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return value.Uint64(), nil
}
