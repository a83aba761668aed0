package usecase

import (
	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/settings"
)

type SettingsUseCaseCfg struct {
	SettingsRepo settings.Repo
}

type impl struct {
	settingsRepo settings.Repo
}

func New(cfg *SettingsUseCaseCfg) settings.UseCase {
	return &impl{
		settingsRepo: cfg.SettingsRepo,
	}
}

func (im *impl) Get(c ctx.Ctx) (*settings.Settings, error) {
	res, err := im.settingsRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("failed to settingsRepo.Get")
		return nil, err
	}
	return res, nil
}

func (im *impl) EnsureDefault(c ctx.Ctx, defaults settings.Settings) error {
	if defaults.Owner.IsEmpty() || defaults.Exchange.IsEmpty() || defaults.PaymentToken.IsEmpty() {
		return domain.ErrBadParamInput
	}

	_, err := im.settingsRepo.Get(c)
	if err == nil {
		return nil
	}
	if err != domain.ErrNotFound {
		c.WithField("err", err).Error("failed to settingsRepo.Get")
		return err
	}

	if err := im.settingsRepo.Upsert(c, &defaults); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"defaults": defaults,
		}).Error("failed to settingsRepo.Upsert")
		return err
	}

	c.WithFields(log.Fields{
		"owner":        defaults.Owner,
		"exchange":     defaults.Exchange,
		"paymentToken": defaults.PaymentToken,
	}).Info("seeded marketplace settings")
	return nil
}

func (im *impl) UpdatePaymentToken(c ctx.Ctx, token domain.Address) (*settings.Settings, error) {
	if token.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	if err := im.settingsRepo.Update(c, settings.Patchable{
		PaymentToken: token.ToLowerPtr(),
	}); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Error("failed to settingsRepo.Update")
		return nil, err
	}

	return im.Get(c)
}
