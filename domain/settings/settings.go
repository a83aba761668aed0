package settings

import (
	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

// Settings is the marketplace configuration record. It is stored as a
// single document and loaded once per operation, never kept as ambient
// global state.
type Settings struct {
	// Owner may administrate the auction-contract registry and settings
	Owner domain.Address `json:"owner" bson:"owner"`
	// Exchange is the marketplace identity that must hold nft approvals
	// and token allowances
	Exchange domain.Address `json:"exchange" bson:"exchange"`
	// PaymentToken is the fungible token standing offers are denominated in
	PaymentToken domain.Address `json:"paymentToken" bson:"paymentToken"`
}

type Patchable struct {
	PaymentToken *domain.Address `bson:"paymentToken,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Settings, error)
	Upsert(ctx ctx.Ctx, settings *Settings) error
	Update(ctx ctx.Ctx, patchable Patchable) error
}

type UseCase interface {
	Get(ctx ctx.Ctx) (*Settings, error)
	// EnsureDefault seeds the settings document on first boot. An existing
	// document always wins over the configured defaults.
	EnsureDefault(ctx ctx.Ctx, defaults Settings) error
	UpdatePaymentToken(ctx ctx.Ctx, token domain.Address) (*Settings, error)
}
