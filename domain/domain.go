package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type Table string

const (
	TableListings         Table = "listings"
	TableOrders           Table = "orders"
	TableAuctionContracts Table = "auction_contracts"
	TableSettings         Table = "settings"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Address is a lowercase hex account or contract address
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLower() == b.ToLower()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Coin is an amount of the native currency. Amount is a base-10 big-int
// string so arbitrary precision survives json/bson round trips.
type Coin struct {
	Denom  string `json:"denom" bson:"denom" validate:"required"`
	Amount string `json:"amount" bson:"amount" validate:"required"`
}

func (c Coin) AmountBig() (*big.Int, error) {
	n, ok := new(big.Int).SetString(c.Amount, 10)
	if !ok || n.Sign() < 0 {
		return nil, xerrors.Errorf("invalid coin amount %q: %w", c.Amount, ErrInvalidNumberFormat)
	}
	return n, nil
}

func (c Coin) IsZero() bool {
	n, err := c.AmountBig()
	return err == nil && n.Sign() == 0
}

func (c Coin) Equals(o Coin) bool {
	a, err := c.AmountBig()
	if err != nil {
		return false
	}
	b, err := o.AmountBig()
	if err != nil {
		return false
	}
	return c.Denom == o.Denom && a.Cmp(b) == 0
}
