package listing

import (
	"time"

	"github.com/aura-nw/marketplace-api/domain"
)

// AuctionKind discriminates the auction config union. Adding a new auction
// scheme means adding a kind and a branch in Valid, nothing else.
type AuctionKind string

const (
	AuctionKindFixedPrice AuctionKind = "fixed_price"
	AuctionKindOther      AuctionKind = "other"
)

type FixedPriceConfig struct {
	Price domain.Coin `json:"price" bson:"price"`
	// start_time < end_time is required whenever both are set
	StartTime *time.Time `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty" bson:"endTime,omitempty"`
}

// OtherConfig defers validation to an external auction handler registered
// in the auction-contract registry.
type OtherConfig struct {
	HandlerAddress domain.Address `json:"handlerAddress" bson:"handlerAddress"`
	Version        uint32         `json:"version" bson:"version"`
	RawConfig      string         `json:"rawConfig" bson:"rawConfig"`
}

type AuctionConfig struct {
	Kind       AuctionKind       `json:"kind" bson:"kind" validate:"required"`
	FixedPrice *FixedPriceConfig `json:"fixedPrice,omitempty" bson:"fixedPrice,omitempty"`
	Other      *OtherConfig      `json:"other,omitempty" bson:"other,omitempty"`
}

// Valid reports whether the config is acceptable for a new listing.
func (c AuctionConfig) Valid() bool {
	switch c.Kind {
	case AuctionKindFixedPrice:
		fp := c.FixedPrice
		if fp == nil {
			return false
		}
		amount, err := fp.Price.AmountBig()
		if err != nil || amount.Sign() == 0 {
			return false
		}
		if fp.StartTime != nil && fp.EndTime != nil && !fp.StartTime.Before(*fp.EndTime) {
			return false
		}
		return true
	case AuctionKindOther:
		// reserved for pluggable handlers: real validation would delegate to
		// the registered handler by address and match its version against the
		// version recorded at listing time
		return false
	default:
		return false
	}
}
