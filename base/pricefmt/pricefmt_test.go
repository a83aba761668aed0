package pricefmt

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aura-nw/marketplace-api/domain"
)

func TestFormatCoin(t *testing.T) {
	req := require.New(t)

	d, err := FormatCoin(domain.Coin{Denom: "uaura", Amount: "1500000"}, 6)
	req.NoError(err)
	req.True(d.Equal(decimal.NewFromFloat(1.5)))

	d, err = FormatCoin(domain.Coin{Denom: "uaura", Amount: "1"}, 6)
	req.NoError(err)
	req.True(d.Equal(decimal.NewFromFloat(0.000001)))

	_, err = FormatCoin(domain.Coin{Denom: "uaura", Amount: "nope"}, 6)
	req.Error(err)
}

func TestToBaseUnits(t *testing.T) {
	req := require.New(t)

	req.Equal(big.NewInt(1500000), ToBaseUnits(decimal.NewFromFloat(1.5), 6))
	// sub-exponent dust is truncated, never rounded up
	req.Equal(big.NewInt(1), ToBaseUnits(decimal.NewFromFloat(0.0000019), 6))
	req.Equal(big.NewInt(0), ToBaseUnits(decimal.NewFromFloat(0.0000009), 6))
}
