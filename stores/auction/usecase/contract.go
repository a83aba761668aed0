package usecase

import (
	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/auction"
	"github.com/aura-nw/marketplace-api/domain/listing"
)

type ContractUseCaseCfg struct {
	ContractRepo auction.Repo
}

type impl struct {
	contractRepo auction.Repo
}

func New(cfg *ContractUseCaseCfg) auction.UseCase {
	return &impl{
		contractRepo: cfg.ContractRepo,
	}
}

func (im *impl) Add(c ctx.Ctx, contract auction.Contract) error {
	if contract.Address.IsEmpty() || contract.Name == "" {
		return domain.ErrBadParamInput
	}

	if err := im.contractRepo.Insert(c, &contract); err != nil {
		if err == domain.ErrAlreadyExists {
			return err
		}
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to contractRepo.Insert")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, address domain.Address) error {
	err := im.contractRepo.Remove(c, auction.Id{Address: address.ToLower()})
	if err == domain.ErrNotFound {
		return err
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to contractRepo.Remove")
		return err
	}
	return nil
}

func (im *impl) GetAll(c ctx.Ctx) ([]*auction.Contract, error) {
	res, err := im.contractRepo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("failed to contractRepo.FindAll")
		return nil, err
	}
	return res, nil
}

// ValidateConfig only checks the registration side: the handler exists and
// the version tag matches. Delegating the raw config to the handler itself
// is not implemented, so listings with handler-backed configs stay rejected
// at creation.
func (im *impl) ValidateConfig(c ctx.Ctx, address domain.Address, version uint32, cfg listing.AuctionConfig) (bool, error) {
	if cfg.Kind != listing.AuctionKindOther || cfg.Other == nil {
		return false, nil
	}

	contract, err := im.contractRepo.FindOne(c, auction.Id{Address: address.ToLower()})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to contractRepo.FindOne")
		return false, err
	}

	return contract.Version == version, nil
}
