package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/auction"
	"github.com/aura-nw/marketplace-api/service/query"
)

const maxRegistrations = 30

type contractRepoImpl struct {
	q query.Mongo
}

// NewContractRepo builds the registry repository. The table carries unique
// indexes on both address and version, so Insert surfaces either collision
// as domain.ErrAlreadyExists.
func NewContractRepo(q query.Mongo) auction.Repo {
	return &contractRepoImpl{q}
}

func (im *contractRepoImpl) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.Contract, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := auction.Contract{}
	err = im.q.FindOne(ctx, domain.TableAuctionContracts, qry, &res)
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

func (im *contractRepoImpl) FindAll(ctx ctx.Ctx) ([]*auction.Contract, error) {
	res := []*auction.Contract{}
	err := im.q.Search(ctx, domain.TableAuctionContracts, 0, maxRegistrations, "address", bson.M{}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *contractRepoImpl) Insert(ctx ctx.Ctx, contract *auction.Contract) error {
	contract.Address = contract.Address.ToLower()

	err := im.q.Insert(ctx, domain.TableAuctionContracts, contract)
	if err == query.ErrDuplicateKey {
		return domain.ErrAlreadyExists
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to q.Insert")
		return err
	}

	return nil
}

func (im *contractRepoImpl) Remove(ctx ctx.Ctx, id auction.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Remove(ctx, domain.TableAuctionContracts, selector)
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
