package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/keys"
	"github.com/aura-nw/marketplace-api/domain/settings"
	"github.com/aura-nw/marketplace-api/service/cache"
	"github.com/aura-nw/marketplace-api/service/cache/provider/primitive"
	"github.com/aura-nw/marketplace-api/service/query"
)

// the settings table holds a single document under this key
const settingsKey = "global"

const cacheKey = "global"

type settingsRepoImpl struct {
	q     query.Mongo
	cache cache.Service
}

// NewSettingsRepo fronts the singleton settings document with a short-lived
// in-process cache since every trade path reads it.
func NewSettingsRepo(q query.Mongo) settings.Repo {
	return &settingsRepoImpl{
		q: q,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxSettings,
			Cache: primitive.NewPrimitive(keys.PfxSettings, 1),
		}),
	}
}

func (im *settingsRepoImpl) selector() bson.M {
	return bson.M{"key": settingsKey}
}

type settingsDoc struct {
	Key string `bson:"key"`
	settings.Settings `bson:",inline"`
}

func (im *settingsRepoImpl) Get(ctx ctx.Ctx) (*settings.Settings, error) {
	res := &settings.Settings{}
	err := im.cache.GetByFunc(ctx, cacheKey, res, func() (interface{}, error) {
		doc := settingsDoc{}
		if err := im.q.FindOne(ctx, domain.TableSettings, im.selector(), &doc); err != nil {
			return nil, err
		}
		return &doc.Settings, nil
	})
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to load settings")
		return nil, err
	}

	return res, nil
}

func (im *settingsRepoImpl) Upsert(ctx ctx.Ctx, s *settings.Settings) error {
	s.Owner = s.Owner.ToLower()
	s.Exchange = s.Exchange.ToLower()
	s.PaymentToken = s.PaymentToken.ToLower()

	doc := settingsDoc{Key: settingsKey, Settings: *s}
	if err := im.q.Upsert(ctx, domain.TableSettings, im.selector(), &doc); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Upsert")
		return err
	}

	if err := im.cache.Del(ctx, cacheKey); err != nil {
		ctx.WithField("err", err).Warn("failed to invalidate settings cache")
	}
	return nil
}

func (im *settingsRepoImpl) Update(ctx ctx.Ctx, patchable settings.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableSettings, im.selector(), updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"updater": updater,
		}).Error("failed to q.Patch")
		return err
	}

	if err := im.cache.Del(ctx, cacheKey); err != nil {
		ctx.WithField("err", err).Warn("failed to invalidate settings cache")
	}
	return nil
}
