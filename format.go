package bridge

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of decimals of the native asset of every EVM chain.
const NativeDecimals = 18

// FormatUnits renders amount, expressed in the smallest unit of an asset with the given
// decimals, as a decimal number of whole units.
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}

	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// FormatNative renders a wei amount in whole units of the native asset.
func FormatNative(amount *big.Int) string {
	return FormatUnits(amount, NativeDecimals)
}
