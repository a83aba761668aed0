package settlement

import (
	"math/big"

	bCtx "github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/service/bank"
	"github.com/aura-nw/marketplace-api/service/custody"
	"github.com/aura-nw/marketplace-api/service/royalty"
)

type SettlementCfg struct {
	Custody custody.Client
	Royalty royalty.Client
	Bank    bank.Client
}

type impl struct {
	custody custody.Client
	royalty royalty.Client
	bank    bank.Client
}

func New(cfg *SettlementCfg) Service {
	return &impl{
		custody: cfg.Custody,
		royalty: cfg.Royalty,
		bank:    cfg.Bank,
	}
}

// split divides price into royalty and seller shares. The royalty leg is
// best-effort: any lookup failure or useless quote falls back to paying the
// seller everything. A quote larger than the price is the one fatal case.
func (im *impl) split(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, seller domain.Address, price *big.Int) (domain.Address, *big.Int, *big.Int, error) {
	info, err := im.royalty.RoyaltyInfo(ctx, collection, tokenId, price)
	if err != nil {
		ctx.WithFields(log.Fields{
			"collection": collection,
			"tokenId":    tokenId,
			"err":        err,
		}).Warn("royalty lookup failed, paying seller in full")
		return "", big.NewInt(0), new(big.Int).Set(price), nil
	}
	if info == nil || info.Amount == nil || info.Amount.Sign() <= 0 || info.Recipient.Equals(seller) {
		return "", big.NewInt(0), new(big.Int).Set(price), nil
	}
	if info.Amount.Cmp(price) > 0 {
		ctx.WithFields(log.Fields{
			"collection": collection,
			"tokenId":    tokenId,
			"royalty":    info.Amount.String(),
			"price":      price.String(),
		}).Error("royalty exceeds sale price")
		return "", nil, nil, domain.ErrRoyaltyExceedsPrice
	}
	proceeds := new(big.Int).Sub(price, info.Amount)
	return info.Recipient, info.Amount, proceeds, nil
}

func (im *impl) SettleNativeSale(ctx bCtx.Ctx, in NativeSaleInput) ([]domain.Instruction, error) {
	price, err := in.Price.AmountBig()
	if err != nil {
		ctx.WithField("err", err).Error("invalid sale price")
		return nil, err
	}

	recipient, royaltyAmt, proceeds, err := im.split(ctx, in.Collection, in.TokenId, in.Seller, price)
	if err != nil {
		return nil, err
	}

	instructions := []domain.Instruction{
		im.custody.TransferInstruction(in.Collection, in.TokenId, in.Buyer),
	}
	if royaltyAmt.Sign() > 0 {
		instructions = append(instructions, im.bank.SendInstruction(recipient, domain.Coin{
			Denom:  in.Price.Denom,
			Amount: royaltyAmt.String(),
		}))
	}
	if proceeds.Sign() > 0 {
		instructions = append(instructions, im.bank.SendInstruction(in.Seller, domain.Coin{
			Denom:  in.Price.Denom,
			Amount: proceeds.String(),
		}))
	}
	return instructions, nil
}

func (im *impl) SettleTokenSale(ctx bCtx.Ctx, in TokenSaleInput) ([]domain.Instruction, error) {
	price, ok := new(big.Int).SetString(in.Amount, 10)
	if !ok || price.Sign() <= 0 {
		ctx.WithField("amount", in.Amount).Error("invalid sale amount")
		return nil, domain.ErrInvalidNumberFormat
	}

	recipient, royaltyAmt, proceeds, err := im.split(ctx, in.Collection, in.TokenId, in.Seller, price)
	if err != nil {
		return nil, err
	}

	instructions := []domain.Instruction{
		im.custody.TransferInstruction(in.Collection, in.TokenId, in.Offerer),
	}
	if royaltyAmt.Sign() > 0 {
		instructions = append(instructions, im.bank.TransferFromInstruction(in.TokenAddress, in.Offerer, recipient, royaltyAmt.String()))
	}
	if proceeds.Sign() > 0 {
		instructions = append(instructions, im.bank.TransferFromInstruction(in.TokenAddress, in.Offerer, in.Seller, proceeds.String()))
	}
	return instructions, nil
}
