package custody

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Approval is a live operator grant on one nft. Expires == nil means the
// grant never expires.
type Approval struct {
	Operator domain.Address `json:"operator"`
	Expires  *time.Time     `json:"expires,omitempty"`
}

func (a *Approval) NeverExpires() bool {
	return a.Expires == nil
}

// Client talks to the nft custody service. Queries go over the wire;
// TransferInstruction only builds an instruction and never performs I/O.
type Client interface {
	// OwnerOf returns the current owner, or domain.ErrNotFound for an
	// unknown token.
	OwnerOf(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error)

	// ApprovalOf returns the operator's grant on the token, or
	// domain.ErrNotFound when no grant exists.
	ApprovalOf(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, operator domain.Address) (*Approval, error)

	// TransferInstruction builds the instruction moving the nft to recipient.
	TransferInstruction(collection domain.Address, tokenId domain.TokenId, recipient domain.Address) domain.Instruction
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
}
