package settlement

import (
	bCtx "github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

// NativeSaleInput settles a fixed-price sale paid in native currency the
// buyer already attached to the call.
type NativeSaleInput struct {
	Collection domain.Address
	TokenId    domain.TokenId
	Seller     domain.Address
	Buyer      domain.Address
	Price      domain.Coin
}

// TokenSaleInput settles an accepted offer paid by pulling the offerer's
// token allowance.
type TokenSaleInput struct {
	Collection   domain.Address
	TokenId      domain.TokenId
	Seller       domain.Address
	Offerer      domain.Address
	TokenAddress domain.Address
	Amount       string
}

// Service computes the ordered instruction bundle for a trade. It performs
// no transfers itself; the host executes the bundle after the state
// transition commits.
//
// The nft transfer always comes first, then the royalty payment when one
// applies, then the seller proceeds. A royalty lookup failure, an empty or
// zero quote, or a quote paying the seller collapses to a single full
// payment to the seller. A quote exceeding the sale price aborts the trade.
type Service interface {
	SettleNativeSale(ctx bCtx.Ctx, in NativeSaleInput) ([]domain.Instruction, error)
	SettleTokenSale(ctx bCtx.Ctx, in TokenSaleInput) ([]domain.Instruction, error)
}
