package order

import (
	"time"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
)

// OrderType of a stored order. Offers are the only supported type; asks go
// through the listing flow instead.
type OrderType string

const OrderTypeOffer OrderType = "offer"

type ItemType string

const (
	ItemTypeNative ItemType = "native"
	ItemTypeToken  ItemType = "token"
	ItemTypeNft    ItemType = "nft"
)

// OfferItem is what the offerer pays. Only fungible-token items are
// accepted by the offer flow.
type OfferItem struct {
	ItemType     ItemType       `json:"itemType" bson:"itemType"`
	TokenAddress domain.Address `json:"tokenAddress,omitempty" bson:"tokenAddress,omitempty"`
	Denom        string         `json:"denom,omitempty" bson:"denom,omitempty"`
	Amount       string         `json:"amount" bson:"amount"`
}

// ConsiderationItem is what the offerer wants in return.
type ConsiderationItem struct {
	ItemType   ItemType       `json:"itemType" bson:"itemType"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Recipient  domain.Address `json:"recipient" bson:"recipient"`
}

// Id uniquely identifies one offerer's standing offer on one nft.
type Id struct {
	Offerer    domain.Address `json:"offerer" bson:"offerer"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type Order struct {
	Offerer       domain.Address      `json:"offerer" bson:"offerer"`
	Collection    domain.Address      `json:"collection" bson:"collection"`
	TokenId       domain.TokenId      `json:"tokenId" bson:"tokenId"`
	OrderType     OrderType           `json:"orderType" bson:"orderType"`
	Offer         []OfferItem         `json:"offer" bson:"offer"`
	Consideration []ConsiderationItem `json:"consideration" bson:"consideration"`
	StartTime     *time.Time          `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime       time.Time           `json:"endTime" bson:"endTime"`
}

func (o *Order) ToId() Id {
	return Id{
		Offerer:    o.Offerer,
		Collection: o.Collection,
		TokenId:    o.TokenId,
	}
}

func (o *Order) LowerCase() {
	o.Offerer = o.Offerer.ToLower()
	o.Collection = o.Collection.ToLower()
	for i := range o.Offer {
		o.Offer[i].TokenAddress = o.Offer[i].TokenAddress.ToLower()
	}
	for i := range o.Consideration {
		o.Consideration[i].Collection = o.Consideration[i].Collection.ToLower()
		o.Consideration[i].Recipient = o.Consideration[i].Recipient.ToLower()
	}
}

func (o *Order) IsExpired(now time.Time) bool {
	return !now.Before(o.EndTime)
}

type FindAllOptions struct {
	Offerer       *domain.Address
	Collection    *domain.Address
	TokenId       *domain.TokenId
	OffererBefore *domain.Address
	NftBefore     *Id
	Limit         *int32
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

func WithOfferer(offerer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		offerer = offerer.ToLower()
		options.Offerer = &offerer
		return nil
	}
}

func WithNft(collection domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		collection = collection.ToLower()
		options.Collection = &collection
		options.TokenId = &tokenId
		return nil
	}
}

// WithOffererBefore is the exclusive cursor for nft-scoped queries, which
// page descending by offerer.
func WithOffererBefore(offerer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		offerer = offerer.ToLower()
		options.OffererBefore = &offerer
		return nil
	}
}

// WithNftBefore is the exclusive cursor for offerer-scoped queries, which
// page descending by (collection, tokenId).
func WithNftBefore(collection domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.NftBefore = &Id{Collection: collection.ToLower(), TokenId: tokenId}
		return nil
	}
}

func WithLimit(limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

// AcceptResult is returned by AcceptOffer: the consumed order plus the
// ordered instruction bundle the host must execute.
type AcceptResult struct {
	Order        *Order               `json:"order"`
	Instructions []domain.Instruction `json:"instructions"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Order, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Order, error)
	Upsert(ctx ctx.Ctx, order *Order) error
	Remove(ctx ctx.Ctx, id Id) error
	RemoveAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) error
}

type UseCase interface {
	MakeOffer(ctx ctx.Ctx, id Id, amount string, endTime time.Time) (*Order, error)
	AcceptOffer(ctx ctx.Ctx, id Id, acceptor domain.Address) (*AcceptResult, error)
	CancelOffer(ctx ctx.Ctx, id Id) error
	CancelAllOffers(ctx ctx.Ctx, offerer domain.Address) error
	GetOffers(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Order, error)
}
