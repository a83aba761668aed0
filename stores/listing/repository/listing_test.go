package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/base/ptr"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/listing"
	"github.com/aura-nw/marketplace-api/service/query"
)

type listingSuite struct {
	suite.Suite

	query query.Mongo
	im    *listingRepoImpl
}

func (s *listingSuite) SetupSuite() {
	uri := "mongodb://localhost:27017/?retryWrites=true&w=majority"
	authDBName := "admin"
	dbName := "test"
	enableSSL := false
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, false)

	s.query = q

	s.im = NewListingRepo(q).(*listingRepoImpl)
}

func (s *listingSuite) SetupTest() {
	_, err := s.query.RemoveAll(ctx.Background(), domain.TableListings, bson.M{})
	s.Nil(err)
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func fixedPrice(amount string) listing.AuctionConfig {
	return listing.AuctionConfig{
		Kind: listing.AuctionKindFixedPrice,
		FixedPrice: &listing.FixedPriceConfig{
			Price: domain.Coin{Denom: "uaura", Amount: amount},
		},
	}
}

func makeListing(collection domain.Address, tokenId domain.TokenId, status listing.Status) *listing.Listing {
	return &listing.Listing{
		Collection:    collection,
		TokenId:       tokenId,
		AuctionConfig: fixedPrice("100"),
		Seller:        "0xseller",
		Status:        status,
		CreatedAt:     time.Unix(1000, 0).UTC(),
	}
}

func (s *listingSuite) TestFindOne() {
	l := makeListing("0xabc", "1", listing.StatusOngoing)
	s.Nil(s.im.Upsert(ctx.Background(), l))

	res, err := s.im.FindOne(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "1"})
	s.Nil(err)
	s.Equal(l.Seller, res.Seller)
	s.Equal(listing.StatusOngoing, res.Status)

	_, err = s.im.FindOne(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "404"})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingSuite) TestUpsertReplacesSlot() {
	l := makeListing("0xabc", "1", listing.StatusCancelled)
	s.Nil(s.im.Upsert(ctx.Background(), l))

	relist := makeListing("0xabc", "1", listing.StatusOngoing)
	relist.AuctionConfig = fixedPrice("250")
	s.Nil(s.im.Upsert(ctx.Background(), relist))

	res, err := s.im.FindOne(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "1"})
	s.Nil(err)
	s.Equal(listing.StatusOngoing, res.Status)
	s.Equal("250", res.AuctionConfig.FixedPrice.Price.Amount)

	cnt, err := s.query.Count(ctx.Background(), domain.TableListings, bson.M{"collection": "0xabc", "tokenId": "1"})
	s.Nil(err)
	s.Equal(1, cnt)
}

func (s *listingSuite) TestUpdateStatus() {
	l := makeListing("0xabc", "1", listing.StatusOngoing)
	s.Nil(s.im.Upsert(ctx.Background(), l))

	buyer := domain.Address("0xbuyer")
	sold := listing.StatusSold
	s.Nil(s.im.Update(ctx.Background(), l.ToId(), listing.Patchable{Status: &sold, Buyer: &buyer}))

	res, err := s.im.FindOne(ctx.Background(), l.ToId())
	s.Nil(err)
	s.Equal(listing.StatusSold, res.Status)
	s.Equal(buyer, *res.Buyer)

	err = s.im.Update(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "404"}, listing.Patchable{Status: &sold})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingSuite) TestFindAllFilters() {
	s.Nil(s.im.Upsert(ctx.Background(), makeListing("0xabc", "1", listing.StatusOngoing)))
	s.Nil(s.im.Upsert(ctx.Background(), makeListing("0xabc", "2", listing.StatusSold)))
	s.Nil(s.im.Upsert(ctx.Background(), makeListing("0xdef", "1", listing.StatusOngoing)))

	res, err := s.im.FindAll(ctx.Background(), listing.WithStatus(listing.StatusOngoing))
	s.Nil(err)
	s.Len(res, 2)

	res, err = s.im.FindAll(ctx.Background(), listing.WithCollection("0xabc"))
	s.Nil(err)
	s.Len(res, 2)

	res, err = s.im.FindAll(ctx.Background(),
		listing.WithStatus(listing.StatusOngoing),
		listing.WithCollection("0xabc"),
	)
	s.Nil(err)
	s.Len(res, 1)
	s.Equal(domain.TokenId("1"), res[0].TokenId)
}

func (s *listingSuite) TestFindAllPagination() {
	// zero-padded ids keep lexicographic order aligned with numeric order
	for i := 1; i <= 35; i++ {
		tokenId := domain.TokenId(fmt.Sprintf("%03d", i))
		s.Nil(s.im.Upsert(ctx.Background(), makeListing("0xabc", tokenId, listing.StatusOngoing)))
	}

	// page size is capped at 30 no matter what was asked
	res, err := s.im.FindAll(ctx.Background(),
		listing.WithCollection("0xabc"),
		listing.WithLimit(100),
	)
	s.Nil(err)
	s.Len(res, 30)
	s.Equal(domain.TokenId("001"), res[0].TokenId)
	s.Equal(domain.TokenId("030"), res[29].TokenId)

	// cursor is exclusive, pages do not overlap or skip
	res, err = s.im.FindAll(ctx.Background(),
		listing.WithCollection("0xabc"),
		listing.WithStartAfter("030"),
		listing.WithLimit(10),
	)
	s.Nil(err)
	s.Len(res, 5)
	s.Equal(domain.TokenId("031"), res[0].TokenId)
	s.Equal(domain.TokenId("035"), res[4].TokenId)

	res, err = s.im.FindAll(ctx.Background(),
		listing.WithCollection("0xabc"),
		listing.WithStartAfter("035"),
	)
	s.Nil(err)
	s.Len(res, 0)
}

func (s *listingSuite) TestLowerCaseOnUpsert() {
	l := makeListing("0xABC", "1", listing.StatusOngoing)
	l.Seller = "0xSELLER"
	s.Nil(s.im.Upsert(ctx.Background(), l))

	res, err := s.im.FindOne(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "1"})
	s.Nil(err)
	s.Equal(domain.Address("0xseller"), res.Seller)

	expired := makeListing("0xabc", "2", listing.StatusOngoing)
	expired.AuctionConfig.FixedPrice.EndTime = ptr.Time(time.Unix(2000, 0).UTC())
	s.Nil(s.im.Upsert(ctx.Background(), expired))

	res2, err := s.im.FindOne(ctx.Background(), listing.Id{Collection: "0xabc", TokenId: "2"})
	s.Nil(err)
	s.True(res2.IsExpired(time.Unix(3000, 0)))
}
