package pricefmt

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/aura-nw/marketplace-api/domain"
)

// DefaultDecimals is used when a token's exponent is unknown.
const DefaultDecimals = 6

// FormatAmount converts a base-unit amount into its display form, e.g.
// 1500000 with 6 decimals becomes 1.5.
func FormatAmount(value *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(value, -decimals)
}

// FormatCoin formats a coin's base-unit amount for display.
func FormatCoin(coin domain.Coin, decimals int32) (decimal.Decimal, error) {
	amount, err := coin.AmountBig()
	if err != nil {
		return decimal.Zero, err
	}
	return FormatAmount(amount, decimals), nil
}

// ToBaseUnits converts a display amount back to base units, truncating any
// fraction smaller than the token's exponent.
func ToBaseUnits(display decimal.Decimal, decimals int32) *big.Int {
	return display.Shift(decimals).Truncate(0).BigInt()
}
