package bank

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

// Client talks to the fungible-asset service. Queries go over the wire;
// the instruction builders only construct instructions and never perform
// I/O.
type Client interface {
	// BalanceOf returns owner's spendable balance. denom is either a native
	// denom or a fungible-token address.
	BalanceOf(ctx bCtx.Ctx, owner domain.Address, denom string) (*big.Int, error)

	// Allowance returns how much of tokenAddress the spender may pull from
	// owner.
	Allowance(ctx bCtx.Ctx, owner, spender, tokenAddress domain.Address) (*big.Int, error)

	// SendInstruction builds a native-coin payment to recipient.
	SendInstruction(recipient domain.Address, coin domain.Coin) domain.Instruction

	// TransferFromInstruction builds an allowance-backed token pull from the
	// owner to recipient.
	TransferFromInstruction(tokenAddress, from, recipient domain.Address, amount string) domain.Instruction
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
}
