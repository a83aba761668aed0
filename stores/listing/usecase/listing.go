package usecase

import (
	"time"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/base/ptr"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/listing"
	"github.com/aura-nw/marketplace-api/domain/settings"
	"github.com/aura-nw/marketplace-api/service/custody"
	"github.com/aura-nw/marketplace-api/service/settlement"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo  listing.Repo
	SettingsRepo settings.Repo
	Custody      custody.Client
	Settlement   settlement.Service
}

type impl struct {
	listingRepo  listing.Repo
	settingsRepo settings.Repo
	custody      custody.Client
	settlement   settlement.Service
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:  cfg.ListingRepo,
		settingsRepo: cfg.SettingsRepo,
		custody:      cfg.Custody,
		settlement:   cfg.Settlement,
	}
}

// List creates or reopens the listing slot for the nft. The slot is free
// when it holds nothing, a terminal listing, or an ongoing listing whose
// sale window has already closed.
func (im *impl) List(c ctx.Ctx, id listing.Id, cfg listing.AuctionConfig, seller domain.Address) (*listing.Listing, error) {
	seller = seller.ToLower()
	id.Collection = id.Collection.ToLower()

	if !cfg.Valid() {
		return nil, domain.ErrInvalidAuctionConfig
	}

	if err := im.authorizeSeller(c, id, seller); err != nil {
		return nil, err
	}

	now := timeNow()
	cur, err := im.listingRepo.FindOne(c, id)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	if cur != nil && cur.IsActive() && !cur.IsExpired(now) {
		return nil, domain.ErrAlreadyExists
	}

	l := &listing.Listing{
		Collection:    id.Collection,
		TokenId:       id.TokenId,
		AuctionConfig: cfg,
		Seller:        seller,
		Status:        listing.StatusOngoing,
		CreatedAt:     now,
	}
	if err := im.listingRepo.Upsert(c, l); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Upsert")
		return nil, err
	}

	return l, nil
}

// authorizeSeller verifies ownership and a never-expiring exchange approval.
// Any custody failure refuses the listing.
func (im *impl) authorizeSeller(c ctx.Ctx, id listing.Id, seller domain.Address) error {
	owner, err := im.custody.OwnerOf(c, id.Collection, id.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("ownership lookup failed, refusing listing")
		return domain.ErrUnauthorized
	}
	if !owner.Equals(seller) {
		return domain.ErrUnauthorized
	}

	cfg, err := im.settingsRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("failed to settingsRepo.Get")
		return domain.ErrUnauthorized
	}

	approval, err := im.custody.ApprovalOf(c, id.Collection, id.TokenId, cfg.Exchange)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("approval lookup failed, refusing listing")
		return domain.ErrUnauthorized
	}
	if !approval.NeverExpires() {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) Buy(c ctx.Ctx, id listing.Id, buyer domain.Address, funds domain.Coin) (*listing.TradeResult, error) {
	buyer = buyer.ToLower()
	id.Collection = id.Collection.ToLower()

	l, err := im.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}

	if !l.IsActive() {
		return nil, domain.ErrListingNotActive
	}
	if l.AuctionConfig.Kind != listing.AuctionKindFixedPrice || l.AuctionConfig.FixedPrice == nil {
		return nil, domain.ErrInvalidAuctionConfig
	}
	if l.Seller.Equals(buyer) {
		return nil, domain.ErrSelfTrade
	}

	fp := l.AuctionConfig.FixedPrice
	now := timeNow()
	if fp.StartTime != nil && now.Before(*fp.StartTime) {
		return nil, domain.ErrSaleNotStarted
	}
	if fp.EndTime != nil && !now.Before(*fp.EndTime) {
		return nil, domain.ErrSaleEnded
	}

	// payment must match the asking price exactly, no partial fills and no
	// overpayment
	if !funds.Equals(fp.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	instructions, err := im.settlement.SettleNativeSale(c, settlement.NativeSaleInput{
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     l.Seller,
		Buyer:      buyer,
		Price:      fp.Price,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to settlement.SettleNativeSale")
		return nil, err
	}

	sold := listing.StatusSold
	if err := im.listingRepo.Update(c, id, listing.Patchable{
		Status: &sold,
		Buyer:  &buyer,
	}); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Update")
		return nil, err
	}

	l.Status = sold
	l.Buyer = &buyer
	return &listing.TradeResult{
		Listing:      l,
		Instructions: instructions,
	}, nil
}

func (im *impl) Cancel(c ctx.Ctx, id listing.Id, canceller domain.Address) (*listing.Listing, error) {
	canceller = canceller.ToLower()
	id.Collection = id.Collection.ToLower()

	l, err := im.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}

	if !l.IsActive() {
		return nil, domain.ErrListingNotActive
	}

	now := timeNow()
	// anyone may clean up an expired listing, only the seller may cancel a
	// live one
	if !l.Seller.Equals(canceller) && !l.IsExpired(now) {
		return nil, domain.ErrUnauthorized
	}
	cancelled := listing.StatusCancelled
	if err := im.listingRepo.Update(c, id, listing.Patchable{
		Status:      &cancelled,
		CancelledAt: ptr.Time(now),
	}); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Update")
		return nil, err
	}

	l.Status = cancelled
	l.CancelledAt = ptr.Time(now)
	return l, nil
}

func (im *impl) Get(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	id.Collection = id.Collection.ToLower()

	l, err := im.listingRepo.FindOne(c, id)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
	}
	return l, err
}

func (im *impl) GetByCollection(c ctx.Ctx, collection domain.Address, startAfter *domain.TokenId, limit *int32) ([]*listing.Listing, error) {
	opts := []listing.FindAllOptionsFunc{
		listing.WithStatus(listing.StatusOngoing),
		listing.WithCollection(collection),
	}
	if startAfter != nil {
		opts = append(opts, listing.WithStartAfter(*startAfter))
	}
	if limit != nil {
		opts = append(opts, listing.WithLimit(*limit))
	}

	res, err := im.listingRepo.FindAll(c, opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("failed to listingRepo.FindAll")
		return nil, err
	}
	return res, nil
}
