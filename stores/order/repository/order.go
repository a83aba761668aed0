package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/order"
	"github.com/aura-nw/marketplace-api/service/query"
)

const (
	maxLimit     = 30
	defaultLimit = 30
)

type orderRepoImpl struct {
	q query.Mongo
}

func NewOrderRepo(q query.Mongo) order.Repo {
	return &orderRepoImpl{q}
}

func (im *orderRepoImpl) makeQuery(opts ...order.FindAllOptionsFunc) (bson.M, *int32, error) {
	options, err := order.GetFindAllOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	query := bson.M{}

	if options.Offerer != nil {
		query["offerer"] = *options.Offerer
	}

	if options.Collection != nil {
		query["collection"] = *options.Collection
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if options.OffererBefore != nil {
		// composes with an exact offerer filter instead of replacing it
		and, _ := query["$and"].(bson.A)
		query["$and"] = append(and, bson.M{"offerer": bson.M{"$lt": *options.OffererBefore}})
	}

	if options.NftBefore != nil {
		// descending resume point over the (collection, tokenId) compound key
		query["$or"] = bson.A{
			bson.M{"collection": bson.M{"$lt": options.NftBefore.Collection}},
			bson.M{
				"collection": options.NftBefore.Collection,
				"tokenId":    bson.M{"$lt": options.NftBefore.TokenId},
			},
		}
	}

	return query, options.Limit, nil
}

func capLimit(limit *int32) int {
	if limit == nil || *limit <= 0 || *limit > maxLimit {
		return defaultLimit
	}
	return int(*limit)
}

func (im *orderRepoImpl) FindOne(ctx ctx.Ctx, id order.Id) (*order.Order, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := order.Order{}
	err = im.q.FindOne(ctx, domain.TableOrders, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *orderRepoImpl) FindAll(ctx ctx.Ctx, opts ...order.FindAllOptionsFunc) ([]*order.Order, error) {
	qry, limit, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*order.Order{}
	err = im.q.SearchNSorts(ctx, domain.TableOrders, 0, capLimit(limit), []string{"-offerer", "-collection", "-tokenId"}, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.SearchNSorts")
		return nil, err
	}

	return res, nil
}

func (im *orderRepoImpl) Upsert(ctx ctx.Ctx, o *order.Order) error {
	o.LowerCase()

	selector, err := mongoclient.MakeBsonM(o.ToId())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  o.ToId(),
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Upsert(ctx, domain.TableOrders, selector, o); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Upsert")
		return err
	}

	return nil
}

func (im *orderRepoImpl) Remove(ctx ctx.Ctx, id order.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Remove(ctx, domain.TableOrders, selector)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}

func (im *orderRepoImpl) RemoveAll(ctx ctx.Ctx, opts ...order.FindAllOptionsFunc) error {
	qry, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return err
	}

	_, err = im.q.RemoveAll(ctx, domain.TableOrders, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.RemoveAll failed")
		return err
	}

	return nil
}
