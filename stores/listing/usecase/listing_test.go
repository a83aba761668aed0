package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/ptr"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/listing"
	mockListing "github.com/aura-nw/marketplace-api/domain/listing/mocks"
	"github.com/aura-nw/marketplace-api/domain/settings"
	mockSettings "github.com/aura-nw/marketplace-api/domain/settings/mocks"
	"github.com/aura-nw/marketplace-api/service/custody"
	mockCustody "github.com/aura-nw/marketplace-api/service/custody/mocks"
	"github.com/aura-nw/marketplace-api/service/settlement"
	mockSettlement "github.com/aura-nw/marketplace-api/service/settlement/mocks"
)

var (
	mockCtx = ctx.Background()

	now = time.Unix(5000, 0).UTC()

	testId = listing.Id{Collection: "0xabc", TokenId: "1"}

	seller = domain.Address("0xseller")
	buyer  = domain.Address("0xbuyer")

	testSettings = &settings.Settings{
		Owner:        "0xowner",
		Exchange:     "0xexchange",
		PaymentToken: "0xtoken",
	}
)

type testsuite struct {
	suite.Suite
	mockRepo       *mockListing.Repo
	mockSettings   *mockSettings.Repo
	mockCustody    *mockCustody.Client
	mockSettlement *mockSettlement.Service
	subject        *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	timeNow = func() time.Time { return now }
	t.mockRepo = &mockListing.Repo{}
	t.mockSettings = &mockSettings.Repo{}
	t.mockCustody = &mockCustody.Client{}
	t.mockSettlement = &mockSettlement.Service{}
	t.subject = &impl{
		listingRepo:  t.mockRepo,
		settingsRepo: t.mockSettings,
		custody:      t.mockCustody,
		settlement:   t.mockSettlement,
	}
}

func fixedPrice(amount string) listing.AuctionConfig {
	return listing.AuctionConfig{
		Kind: listing.AuctionKindFixedPrice,
		FixedPrice: &listing.FixedPriceConfig{
			Price: domain.Coin{Denom: "uaura", Amount: amount},
		},
	}
}

func ongoing() *listing.Listing {
	return &listing.Listing{
		Collection:    testId.Collection,
		TokenId:       testId.TokenId,
		AuctionConfig: fixedPrice("100"),
		Seller:        seller,
		Status:        listing.StatusOngoing,
		CreatedAt:     now.Add(-time.Hour),
	}
}

func (t *testsuite) authorize() {
	t.mockCustody.On("OwnerOf", mockCtx, testId.Collection, testId.TokenId).Return(seller, nil)
	t.mockSettings.On("Get", mockCtx).Return(testSettings, nil)
	t.mockCustody.
		On("ApprovalOf", mockCtx, testId.Collection, testId.TokenId, testSettings.Exchange).
		Return(&custody.Approval{Operator: testSettings.Exchange}, nil)
}

func (t *testsuite) TestListSuccess() {
	t.authorize()
	t.mockRepo.On("FindOne", mockCtx, testId).Return(nil, domain.ErrNotFound)
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	res, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.NoError(err)
	t.Equal(listing.StatusOngoing, res.Status)
	t.Equal(seller, res.Seller)
	t.Equal(now, res.CreatedAt)
}

func (t *testsuite) TestListInvalidConfig() {
	_, err := t.subject.List(mockCtx, testId, fixedPrice("0"), seller)
	t.ErrorIs(err, domain.ErrInvalidAuctionConfig)
	t.mockCustody.AssertNotCalled(t.T(), "OwnerOf", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestListHandlerConfigRejected() {
	cfg := listing.AuctionConfig{
		Kind:  listing.AuctionKindOther,
		Other: &listing.OtherConfig{HandlerAddress: "0xhandler", Version: 1, RawConfig: "{}"},
	}
	_, err := t.subject.List(mockCtx, testId, cfg, seller)
	t.ErrorIs(err, domain.ErrInvalidAuctionConfig)
}

func (t *testsuite) TestListNotOwner() {
	t.mockCustody.On("OwnerOf", mockCtx, testId.Collection, testId.TokenId).Return(domain.Address("0xother"), nil)

	_, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.ErrorIs(err, domain.ErrUnauthorized)
}

func (t *testsuite) TestListOwnershipLookupFailsClosed() {
	t.mockCustody.
		On("OwnerOf", mockCtx, testId.Collection, testId.TokenId).
		Return(domain.Address(""), errors.New("custody down"))

	_, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.ErrorIs(err, domain.ErrUnauthorized)
}

func (t *testsuite) TestListExpiringApprovalRejected() {
	t.mockCustody.On("OwnerOf", mockCtx, testId.Collection, testId.TokenId).Return(seller, nil)
	t.mockSettings.On("Get", mockCtx).Return(testSettings, nil)
	t.mockCustody.
		On("ApprovalOf", mockCtx, testId.Collection, testId.TokenId, testSettings.Exchange).
		Return(&custody.Approval{Operator: testSettings.Exchange, Expires: ptr.Time(now.Add(time.Hour))}, nil)

	_, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.ErrorIs(err, domain.ErrUnauthorized)
}

func (t *testsuite) TestListOverActiveFails() {
	t.authorize()
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)

	_, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.ErrorIs(err, domain.ErrAlreadyExists)
	t.mockRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestRelistOverTerminal() {
	cancelled := ongoing()
	cancelled.Status = listing.StatusCancelled
	cancelled.CancelledAt = ptr.Time(now.Add(-time.Minute))

	t.authorize()
	t.mockRepo.On("FindOne", mockCtx, testId).Return(cancelled, nil)
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	res, err := t.subject.List(mockCtx, testId, fixedPrice("200"), seller)
	t.NoError(err)
	t.Equal(listing.StatusOngoing, res.Status)
	t.Nil(res.CancelledAt)
	t.Equal("200", res.AuctionConfig.FixedPrice.Price.Amount)
}

func (t *testsuite) TestRelistOverExpired() {
	expired := ongoing()
	expired.AuctionConfig.FixedPrice.EndTime = ptr.Time(now.Add(-time.Minute))

	t.authorize()
	t.mockRepo.On("FindOne", mockCtx, testId).Return(expired, nil)
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	_, err := t.subject.List(mockCtx, testId, fixedPrice("100"), seller)
	t.NoError(err)
}

func (t *testsuite) TestBuySuccess() {
	instructions := []domain.Instruction{
		{Type: domain.InstructionNftTransfer, Recipient: buyer},
		{Type: domain.InstructionNativeSend, Recipient: seller},
	}

	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)
	t.mockSettlement.
		On("SettleNativeSale", mockCtx, settlement.NativeSaleInput{
			Collection: testId.Collection,
			TokenId:    testId.TokenId,
			Seller:     seller,
			Buyer:      buyer,
			Price:      domain.Coin{Denom: "uaura", Amount: "100"},
		}).
		Return(instructions, nil)
	sold := listing.StatusSold
	t.mockRepo.On("Update", mockCtx, testId, listing.Patchable{Status: &sold, Buyer: &buyer}).Return(nil)

	res, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "100"})
	t.NoError(err)
	t.Equal(listing.StatusSold, res.Listing.Status)
	t.Equal(buyer, *res.Listing.Buyer)
	t.Equal(instructions, res.Instructions)
	t.Equal(domain.InstructionNftTransfer, res.Instructions[0].Type)
}

func (t *testsuite) TestBuyNotFound() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *testsuite) TestBuySoldListing() {
	sold := ongoing()
	sold.Status = listing.StatusSold
	sold.Buyer = &buyer

	t.mockRepo.On("FindOne", mockCtx, testId).Return(sold, nil)

	// a second buy of the same listing can never settle twice
	_, err := t.subject.Buy(mockCtx, testId, "0xother", domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrListingNotActive)
	t.mockSettlement.AssertNotCalled(t.T(), "SettleNativeSale", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuySelfTrade() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)

	_, err := t.subject.Buy(mockCtx, testId, seller, domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrSelfTrade)
}

func (t *testsuite) TestBuyBeforeStart() {
	l := ongoing()
	l.AuctionConfig.FixedPrice.StartTime = ptr.Time(now.Add(time.Hour))

	t.mockRepo.On("FindOne", mockCtx, testId).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrSaleNotStarted)
}

func (t *testsuite) TestBuyAfterEnd() {
	l := ongoing()
	l.AuctionConfig.FixedPrice.EndTime = ptr.Time(now)

	t.mockRepo.On("FindOne", mockCtx, testId).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrSaleEnded)
}

func (t *testsuite) TestBuyFundsMustMatchExactly() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)

	_, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "99"})
	t.ErrorIs(err, domain.ErrInsufficientFunds)

	// overpayment is rejected too
	_, err = t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "101"})
	t.ErrorIs(err, domain.ErrInsufficientFunds)

	_, err = t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uatom", Amount: "100"})
	t.ErrorIs(err, domain.ErrInsufficientFunds)
}

func (t *testsuite) TestBuySettlementFailureLeavesListing() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)
	t.mockSettlement.
		On("SettleNativeSale", mockCtx, mock.Anything).
		Return(nil, domain.ErrRoyaltyExceedsPrice)

	_, err := t.subject.Buy(mockCtx, testId, buyer, domain.Coin{Denom: "uaura", Amount: "100"})
	t.ErrorIs(err, domain.ErrRoyaltyExceedsPrice)
	t.mockRepo.AssertNotCalled(t.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancelSuccess() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)
	cancelled := listing.StatusCancelled
	t.mockRepo.
		On("Update", mockCtx, testId, listing.Patchable{Status: &cancelled, CancelledAt: ptr.Time(now)}).
		Return(nil)

	res, err := t.subject.Cancel(mockCtx, testId, seller)
	t.NoError(err)
	t.Equal(listing.StatusCancelled, res.Status)
	t.Equal(now, *res.CancelledAt)
}

func (t *testsuite) TestCancelNotSeller() {
	t.mockRepo.On("FindOne", mockCtx, testId).Return(ongoing(), nil)

	_, err := t.subject.Cancel(mockCtx, testId, buyer)
	t.ErrorIs(err, domain.ErrUnauthorized)
}

func (t *testsuite) TestCancelExpiredByAnyone() {
	expired := ongoing()
	expired.AuctionConfig.FixedPrice.EndTime = ptr.Time(now.Add(-time.Minute))

	t.mockRepo.On("FindOne", mockCtx, testId).Return(expired, nil)
	cancelled := listing.StatusCancelled
	t.mockRepo.
		On("Update", mockCtx, testId, listing.Patchable{Status: &cancelled, CancelledAt: ptr.Time(now)}).
		Return(nil)

	res, err := t.subject.Cancel(mockCtx, testId, buyer)
	t.NoError(err)
	t.Equal(listing.StatusCancelled, res.Status)
}

func (t *testsuite) TestCancelTerminal() {
	sold := ongoing()
	sold.Status = listing.StatusSold

	t.mockRepo.On("FindOne", mockCtx, testId).Return(sold, nil)

	_, err := t.subject.Cancel(mockCtx, testId, seller)
	t.ErrorIs(err, domain.ErrListingNotActive)
}

func (t *testsuite) TestGetByCollection() {
	expected := []*listing.Listing{ongoing()}
	t.mockRepo.
		On("FindAll", mockCtx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(expected, nil)

	startAfter := domain.TokenId("5")
	res, err := t.subject.GetByCollection(mockCtx, "0xabc", &startAfter, ptr.Int32(10))
	t.NoError(err)
	t.Equal(expected, res)
}
