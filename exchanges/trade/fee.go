package trade

import "github.com/shopspring/decimal"

// FeeRounding selects the rounding mode an exchange applies when settling
// fees. The mode must match the exchange's documented settlement behavior
// exactly; a library default silently changes settled amounts.
type FeeRounding uint8

const (
	// FeeRoundCeiling rounds towards positive infinity, matching
	// exchanges that always round fees up at the stated scale.
	FeeRoundCeiling FeeRounding = iota
	// FeeRoundHalfUp rounds half away from zero. Fees are never
	// negative, so this is exact half-up behavior.
	FeeRoundHalfUp
)

// DefaultFeeScale is the decimal scale most exchanges settle fees at
const DefaultFeeScale int32 = 8

// CalculateFee derives a settlement fee as feeRate * amount * price,
// rounded to the supplied scale with the exchange's rounding mode.
func CalculateFee(feeRate, amount, price decimal.Decimal, scale int32, mode FeeRounding) decimal.Decimal {
	fee := feeRate.Mul(amount).Mul(price)
	if mode == FeeRoundCeiling {
		return fee.RoundCeil(scale)
	}
	return fee.Round(scale)
}
