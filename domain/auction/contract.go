package auction

import (
	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/listing"
)

// Contract is a registered external auction handler. Version tags are
// unique system-wide so two handler registrations can never claim the
// same version.
type Contract struct {
	Address domain.Address `json:"address" bson:"address" validate:"required"`
	Version uint32         `json:"version" bson:"version"`
	Name    string         `json:"name" bson:"name" validate:"required"`
}

func (c *Contract) ToId() Id {
	return Id{Address: c.Address}
}

type Id struct {
	Address domain.Address `json:"address" bson:"address"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Contract, error)
	// FindAll returns at most 30 registrations, ascending by address.
	FindAll(ctx ctx.Ctx) ([]*Contract, error)
	// Insert fails with domain.ErrAlreadyExists when the address or the
	// version tag is already registered.
	Insert(ctx ctx.Ctx, contract *Contract) error
	Remove(ctx ctx.Ctx, id Id) error
}

type UseCase interface {
	Add(ctx ctx.Ctx, contract Contract) error
	Remove(ctx ctx.Ctx, address domain.Address) error
	GetAll(ctx ctx.Ctx) ([]*Contract, error)
	// ValidateConfig checks a config against a registered handler. Handler
	// delegation is a documented stub upstream; only registration existence
	// and version match are verified.
	ValidateConfig(ctx ctx.Ctx, address domain.Address, version uint32, cfg listing.AuctionConfig) (bool, error)
}
