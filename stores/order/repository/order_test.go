package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/order"
	"github.com/aura-nw/marketplace-api/service/query"
)

type orderSuite struct {
	suite.Suite

	query query.Mongo
	im    *orderRepoImpl
}

func (s *orderSuite) SetupSuite() {
	uri := "mongodb://localhost:27017/?retryWrites=true&w=majority"
	authDBName := "admin"
	dbName := "test"
	enableSSL := false
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, false)

	s.query = q

	s.im = NewOrderRepo(q).(*orderRepoImpl)
}

func (s *orderSuite) SetupTest() {
	_, err := s.query.RemoveAll(ctx.Background(), domain.TableOrders, bson.M{})
	s.Nil(err)
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(orderSuite))
}

func makeOrder(offerer, collection domain.Address, tokenId domain.TokenId, amount string) *order.Order {
	return &order.Order{
		Offerer:    offerer,
		Collection: collection,
		TokenId:    tokenId,
		OrderType:  order.OrderTypeOffer,
		Offer: []order.OfferItem{
			{ItemType: order.ItemTypeToken, TokenAddress: "0xtoken", Amount: amount},
		},
		Consideration: []order.ConsiderationItem{
			{ItemType: order.ItemTypeNft, Collection: collection, TokenId: tokenId, Recipient: offerer},
		},
		EndTime: time.Unix(9000, 0).UTC(),
	}
}

func (s *orderSuite) TestFindOne() {
	o := makeOrder("0xalice", "0xabc", "1", "100")
	s.Nil(s.im.Upsert(ctx.Background(), o))

	res, err := s.im.FindOne(ctx.Background(), o.ToId())
	s.Nil(err)
	s.Equal(o.Offerer, res.Offerer)
	s.Equal("100", res.Offer[0].Amount)

	_, err = s.im.FindOne(ctx.Background(), order.Id{Offerer: "0xbob", Collection: "0xabc", TokenId: "1"})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *orderSuite) TestUpsertLatestWins() {
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", "1", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", "1", "250")))

	res, err := s.im.FindOne(ctx.Background(), order.Id{Offerer: "0xalice", Collection: "0xabc", TokenId: "1"})
	s.Nil(err)
	s.Equal("250", res.Offer[0].Amount)

	cnt, err := s.query.Count(ctx.Background(), domain.TableOrders, bson.M{"offerer": "0xalice"})
	s.Nil(err)
	s.Equal(1, cnt)
}

func (s *orderSuite) TestRemove() {
	o := makeOrder("0xalice", "0xabc", "1", "100")
	s.Nil(s.im.Upsert(ctx.Background(), o))

	s.Nil(s.im.Remove(ctx.Background(), o.ToId()))
	s.ErrorIs(s.im.Remove(ctx.Background(), o.ToId()), domain.ErrNotFound)
}

func (s *orderSuite) TestRemoveAllByOfferer() {
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", "1", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xdef", "2", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xbob", "0xabc", "1", "100")))

	s.Nil(s.im.RemoveAll(ctx.Background(), order.WithOfferer("0xalice")))

	res, err := s.im.FindAll(ctx.Background())
	s.Nil(err)
	s.Len(res, 1)
	s.Equal(domain.Address("0xbob"), res[0].Offerer)
}

func (s *orderSuite) TestFindAllByNft() {
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", "1", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xbob", "0xabc", "1", "120")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xcarol", "0xabc", "2", "90")))

	res, err := s.im.FindAll(ctx.Background(), order.WithNft("0xabc", "1"))
	s.Nil(err)
	s.Len(res, 2)
	// descending by offerer
	s.Equal(domain.Address("0xbob"), res[0].Offerer)
	s.Equal(domain.Address("0xalice"), res[1].Offerer)

	// exclusive cursor resumes strictly below
	res, err = s.im.FindAll(ctx.Background(), order.WithNft("0xabc", "1"), order.WithOffererBefore("0xbob"))
	s.Nil(err)
	s.Len(res, 1)
	s.Equal(domain.Address("0xalice"), res[0].Offerer)
}

func (s *orderSuite) TestOffererCursorKeepsOffererFilter() {
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", "1", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xdef", "2", "100")))
	s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xaaron", "0xabc", "1", "100")))

	// the cursor must narrow the offerer filter, not replace it
	res, err := s.im.FindAll(ctx.Background(),
		order.WithOfferer("0xalice"),
		order.WithOffererBefore("0xbob"),
	)
	s.Nil(err)
	s.Len(res, 2)
	for _, o := range res {
		s.Equal(domain.Address("0xalice"), o.Offerer)
	}
}

func TestMakeQueryComposesOffererCursor(t *testing.T) {
	im := &orderRepoImpl{}

	q, _, err := im.makeQuery(order.WithOfferer("0xalice"), order.WithOffererBefore("0xbob"))
	require.NoError(t, err)
	require.Equal(t, domain.Address("0xalice"), q["offerer"])
	require.Equal(t, bson.A{bson.M{"offerer": bson.M{"$lt": domain.Address("0xbob")}}}, q["$and"])
}

func (s *orderSuite) TestFindAllByOffererPagination() {
	for i := 1; i <= 35; i++ {
		tokenId := domain.TokenId(fmt.Sprintf("%03d", i))
		s.Nil(s.im.Upsert(ctx.Background(), makeOrder("0xalice", "0xabc", tokenId, "100")))
	}

	res, err := s.im.FindAll(ctx.Background(), order.WithOfferer("0xalice"), order.WithLimit(100))
	s.Nil(err)
	s.Len(res, 30)
	// descending by token id
	s.Equal(domain.TokenId("035"), res[0].TokenId)
	s.Equal(domain.TokenId("006"), res[29].TokenId)

	res, err = s.im.FindAll(ctx.Background(),
		order.WithOfferer("0xalice"),
		order.WithNftBefore("0xabc", "006"),
	)
	s.Nil(err)
	s.Len(res, 5)
	s.Equal(domain.TokenId("005"), res[0].TokenId)
	s.Equal(domain.TokenId("001"), res[4].TokenId)
}
