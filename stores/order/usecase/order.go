package usecase

import (
	"math/big"
	"time"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/order"
	"github.com/aura-nw/marketplace-api/domain/settings"
	"github.com/aura-nw/marketplace-api/service/bank"
	"github.com/aura-nw/marketplace-api/service/custody"
	"github.com/aura-nw/marketplace-api/service/settlement"
)

var timeNow = time.Now

type OrderUseCaseCfg struct {
	OrderRepo    order.Repo
	SettingsRepo settings.Repo
	Custody      custody.Client
	Bank         bank.Client
	Settlement   settlement.Service
}

type impl struct {
	orderRepo    order.Repo
	settingsRepo settings.Repo
	custody      custody.Client
	bank         bank.Client
	settlement   settlement.Service
}

func New(cfg *OrderUseCaseCfg) order.UseCase {
	return &impl{
		orderRepo:    cfg.OrderRepo,
		settingsRepo: cfg.SettingsRepo,
		custody:      cfg.Custody,
		bank:         cfg.Bank,
		settlement:   cfg.Settlement,
	}
}

// MakeOffer stores or replaces the offerer's standing offer on the nft.
// There is no compare-and-set: the latest offer always wins.
func (im *impl) MakeOffer(c ctx.Ctx, id order.Id, amount string, endTime time.Time) (*order.Order, error) {
	id.Offerer = id.Offerer.ToLower()
	id.Collection = id.Collection.ToLower()

	value, ok := new(big.Int).SetString(amount, 10)
	if !ok || value.Sign() <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if !endTime.After(timeNow()) {
		return nil, domain.ErrOfferExpired
	}

	owner, err := im.custody.OwnerOf(c, id.Collection, id.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("ownership lookup failed, refusing offer")
		return nil, domain.ErrNotFound
	}
	if owner.Equals(id.Offerer) {
		return nil, domain.ErrSelfTrade
	}

	cfg, err := im.settingsRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("failed to settingsRepo.Get")
		return nil, err
	}

	if err := im.checkSpendable(c, id.Offerer, cfg, value); err != nil {
		return nil, err
	}

	o := &order.Order{
		Offerer:    id.Offerer,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		OrderType:  order.OrderTypeOffer,
		Offer: []order.OfferItem{
			{ItemType: order.ItemTypeToken, TokenAddress: cfg.PaymentToken, Amount: amount},
		},
		Consideration: []order.ConsiderationItem{
			{ItemType: order.ItemTypeNft, Collection: id.Collection, TokenId: id.TokenId, Recipient: id.Offerer},
		},
		EndTime: endTime,
	}
	if err := im.orderRepo.Upsert(c, o); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to orderRepo.Upsert")
		return nil, err
	}

	return o, nil
}

// checkSpendable verifies the offerer can actually fund the offer right now.
// Both legs are re-checked at accept time since either can be withdrawn.
func (im *impl) checkSpendable(c ctx.Ctx, offerer domain.Address, cfg *settings.Settings, value *big.Int) error {
	balance, err := im.bank.BalanceOf(c, offerer, string(cfg.PaymentToken))
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerer": offerer,
		}).Warn("balance lookup failed, refusing offer")
		return domain.ErrInsufficientBalance
	}
	if balance.Cmp(value) < 0 {
		return domain.ErrInsufficientBalance
	}

	allowance, err := im.bank.Allowance(c, offerer, cfg.Exchange, cfg.PaymentToken)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerer": offerer,
		}).Warn("allowance lookup failed, refusing offer")
		return domain.ErrInsufficientAllowance
	}
	if allowance.Cmp(value) < 0 {
		return domain.ErrInsufficientAllowance
	}
	return nil
}

// AcceptOffer consumes the order exactly once: the order is removed in the
// same operation that emits the settlement bundle, so a second accept finds
// nothing.
func (im *impl) AcceptOffer(c ctx.Ctx, id order.Id, acceptor domain.Address) (*order.AcceptResult, error) {
	id.Offerer = id.Offerer.ToLower()
	id.Collection = id.Collection.ToLower()
	acceptor = acceptor.ToLower()

	o, err := im.orderRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to orderRepo.FindOne")
		return nil, err
	}

	// expired orders stay in place until cancelled
	if o.IsExpired(timeNow()) {
		return nil, domain.ErrOfferExpired
	}
	if o.Offerer.Equals(acceptor) {
		return nil, domain.ErrSelfTrade
	}

	owner, err := im.custody.OwnerOf(c, id.Collection, id.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("ownership lookup failed, refusing accept")
		return nil, domain.ErrUnauthorized
	}
	if !owner.Equals(acceptor) {
		return nil, domain.ErrUnauthorized
	}

	if len(o.Offer) != 1 || o.Offer[0].ItemType != order.ItemTypeToken ||
		len(o.Consideration) != 1 || o.Consideration[0].ItemType != order.ItemTypeNft {
		return nil, domain.ErrInvalidOrderShape
	}
	payment := o.Offer[0]

	value, ok := new(big.Int).SetString(payment.Amount, 10)
	if !ok || value.Sign() <= 0 {
		return nil, domain.ErrInvalidNumberFormat
	}

	cfg, err := im.settingsRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("failed to settingsRepo.Get")
		return nil, err
	}
	if err := im.checkSpendable(c, id.Offerer, cfg, value); err != nil {
		return nil, err
	}

	instructions, err := im.settlement.SettleTokenSale(c, settlement.TokenSaleInput{
		Collection:   id.Collection,
		TokenId:      id.TokenId,
		Seller:       acceptor,
		Offerer:      id.Offerer,
		TokenAddress: payment.TokenAddress,
		Amount:       payment.Amount,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to settlement.SettleTokenSale")
		return nil, err
	}

	if err := im.orderRepo.Remove(c, id); err != nil {
		// already consumed by a concurrent accept
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to orderRepo.Remove")
		return nil, err
	}

	return &order.AcceptResult{
		Order:        o,
		Instructions: instructions,
	}, nil
}

// CancelOffer is idempotent: cancelling a missing order succeeds.
func (im *impl) CancelOffer(c ctx.Ctx, id order.Id) error {
	id.Offerer = id.Offerer.ToLower()
	id.Collection = id.Collection.ToLower()

	err := im.orderRepo.Remove(c, id)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to orderRepo.Remove")
		return err
	}
	return nil
}

func (im *impl) CancelAllOffers(c ctx.Ctx, offerer domain.Address) error {
	if err := im.orderRepo.RemoveAll(c, order.WithOfferer(offerer)); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerer": offerer,
		}).Error("failed to orderRepo.RemoveAll")
		return err
	}
	return nil
}

func (im *impl) GetOffers(c ctx.Ctx, opts ...order.FindAllOptionsFunc) ([]*order.Order, error) {
	res, err := im.orderRepo.FindAll(c, opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to orderRepo.FindAll")
		return nil, err
	}
	return res, nil
}
