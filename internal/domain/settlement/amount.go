package settlement

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// USDCDecimals is the token precision on every chain USDC is deployed to.
const USDCDecimals int32 = 6

// TotalCost is the amount a buyer owes for a match: hourly price times hours.
func TotalCost(pricePerHour decimal.Decimal, durationHours int) decimal.Decimal {
	return pricePerHour.Mul(decimal.NewFromInt(int64(durationHours)))
}

// ToBaseUnits converts a token amount to its integer on-chain representation.
// Precision beyond the token decimals is truncated.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

func FromBaseUnits(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}
