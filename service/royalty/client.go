package royalty

import (
	"errors"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Info is one royalty quote for a sale price. A nil Info means the
// collection declares no royalty.
type Info struct {
	Recipient domain.Address `json:"recipient"`
	Amount    *big.Int       `json:"amount"`
}

// Client queries per-token royalty quotes from the royalty registry.
type Client interface {
	// RoyaltyInfo returns the royalty owed for selling the token at
	// salePrice. It returns (nil, nil) when the collection declares no
	// royalty.
	RoyaltyInfo(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, salePrice *big.Int) (*Info, error)
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
}
