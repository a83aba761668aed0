package domain

import "errors"

var (
	// ErrInternalServerError is returned on unexpected collaborator or storage failures
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when no listing or order exists at the requested key
	ErrNotFound = errors.New("requested item is not found")
	// ErrAlreadyExists is returned when a creation collides with an active entry
	ErrAlreadyExists = errors.New("item already exists")
	// ErrUnauthorized is returned when the caller lacks the right to act
	ErrUnauthorized = errors.New("unauthorized")
	// ErrListingNotActive is returned when an operation requires an ongoing listing
	ErrListingNotActive = errors.New("listing is not active")
	// ErrBadParamInput is returned when the given request body or params are not valid
	ErrBadParamInput = errors.New("given param is not valid")

	ErrInvalidAuctionConfig  = errors.New("invalid auction config")
	ErrSelfTrade             = errors.New("owner cannot trade with themselves")
	ErrSaleNotStarted        = errors.New("sale not started")
	ErrSaleEnded             = errors.New("sale ended")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrOfferExpired          = errors.New("offer expired")
	ErrRoyaltyExceedsPrice   = errors.New("royalty amount exceeds sale price")
	ErrInvalidOrderShape     = errors.New("order must offer exactly one payment item for one nft")
	ErrInvalidNumberFormat   = errors.New("invalid number format")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidSignature      = errors.New("invalid signature")
)
