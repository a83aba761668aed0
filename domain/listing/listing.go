package listing

import (
	"time"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

// Id is the unique identity of a listing slot. One nft has at most one slot.
type Id struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type Listing struct {
	Collection    domain.Address  `json:"collection" bson:"collection"`
	TokenId       domain.TokenId  `json:"tokenId" bson:"tokenId"`
	AuctionConfig AuctionConfig   `json:"auctionConfig" bson:"auctionConfig"`
	Seller        domain.Address  `json:"seller" bson:"seller"`
	Buyer         *domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Status        Status          `json:"status" bson:"status"`
	CancelledAt   *time.Time      `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) ToId() Id {
	return Id{
		Collection: l.Collection,
		TokenId:    l.TokenId,
	}
}

func (l *Listing) LowerCase() {
	l.Collection = l.Collection.ToLower()
	l.Seller = l.Seller.ToLower()
	if l.Buyer != nil {
		l.Buyer = l.Buyer.ToLowerPtr()
	}
}

func (l *Listing) IsActive() bool {
	return l.Status == StatusOngoing
}

// IsExpired reports whether an ongoing fixed-price listing has passed its
// end time. Terminal listings are never expired; expiry only matters for
// ongoing ones.
func (l *Listing) IsExpired(now time.Time) bool {
	if l.Status != StatusOngoing {
		return false
	}
	fp := l.AuctionConfig.FixedPrice
	if l.AuctionConfig.Kind != AuctionKindFixedPrice || fp == nil || fp.EndTime == nil {
		return false
	}
	return !now.Before(*fp.EndTime)
}

// Patchable carries the status transition fields. Fields left nil are not
// touched.
type Patchable struct {
	Status      *Status         `bson:"status,omitempty"`
	Buyer       *domain.Address `bson:"buyer,omitempty"`
	CancelledAt *time.Time      `bson:"cancelledAt,omitempty"`
}

type FindAllOptions struct {
	Status     *Status
	Collection *domain.Address
	StartAfter *domain.TokenId
	Limit      *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		collection = collection.ToLower()
		options.Collection = &collection
		return nil
	}
}

// WithStartAfter sets the exclusive pagination cursor. Results resume
// strictly after the given token id within the (status, collection)
// partition.
func WithStartAfter(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.StartAfter = &tokenId
		return nil
	}
}

func WithLimit(limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

// TradeResult is returned by Buy: the updated listing plus the ordered
// instruction bundle the host must execute.
type TradeResult struct {
	Listing      *Listing             `json:"listing"`
	Instructions []domain.Instruction `json:"instructions"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Upsert(ctx ctx.Ctx, listing *Listing) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
}

type UseCase interface {
	List(ctx ctx.Ctx, id Id, cfg AuctionConfig, seller domain.Address) (*Listing, error)
	Buy(ctx ctx.Ctx, id Id, buyer domain.Address, funds domain.Coin) (*TradeResult, error)
	Cancel(ctx ctx.Ctx, id Id, canceller domain.Address) (*Listing, error)
	Get(ctx ctx.Ctx, id Id) (*Listing, error)
	GetByCollection(ctx ctx.Ctx, collection domain.Address, startAfter *domain.TokenId, limit *int32) ([]*Listing, error)
}
