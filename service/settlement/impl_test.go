package settlement

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/service/bank"
	"github.com/aura-nw/marketplace-api/service/custody"
	"github.com/aura-nw/marketplace-api/service/royalty"
	mockRoyalty "github.com/aura-nw/marketplace-api/service/royalty/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockRoyalty *mockRoyalty.Client
	subject     *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRoyalty = &mockRoyalty.Client{}
	t.subject = &impl{
		custody: custody.NewClient(&custody.ClientCfg{}),
		royalty: t.mockRoyalty,
		bank:    bank.NewClient(&bank.ClientCfg{}),
	}
}

func (t *testsuite) nativeInput() NativeSaleInput {
	return NativeSaleInput{
		Collection: "0xcollection",
		TokenId:    "7",
		Seller:     "0xseller",
		Buyer:      "0xbuyer",
		Price:      domain.Coin{Denom: "uaura", Amount: "43"},
	}
}

func (t *testsuite) TestNativeSaleWithRoyalty() {
	in := t.nativeInput()

	// 4% of 43 floors to 1
	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(&royalty.Info{Recipient: "0xcreator", Amount: big.NewInt(1)}, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 3)

	t.Equal(domain.InstructionNftTransfer, instructions[0].Type)
	t.Equal(in.Buyer, instructions[0].Recipient)
	t.Equal(in.Collection, instructions[0].Collection)

	t.Equal(domain.InstructionNativeSend, instructions[1].Type)
	t.Equal(domain.Address("0xcreator"), instructions[1].Recipient)
	t.Equal("1", instructions[1].Coin.Amount)

	t.Equal(domain.InstructionNativeSend, instructions[2].Type)
	t.Equal(in.Seller, instructions[2].Recipient)
	t.Equal("42", instructions[2].Coin.Amount)

	// the two payment legs sum exactly to the price
	royaltyAmt, _ := instructions[1].Coin.AmountBig()
	proceeds, _ := instructions[2].Coin.AmountBig()
	t.Equal(big.NewInt(43), new(big.Int).Add(royaltyAmt, proceeds))
}

func (t *testsuite) TestNativeSaleNoRoyaltyDeclared() {
	in := t.nativeInput()

	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(nil, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 2)
	t.Equal(domain.InstructionNftTransfer, instructions[0].Type)
	t.Equal(in.Seller, instructions[1].Recipient)
	t.Equal("43", instructions[1].Coin.Amount)
}

func (t *testsuite) TestNativeSaleZeroRoyalty() {
	in := t.nativeInput()

	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(&royalty.Info{Recipient: "0xcreator", Amount: big.NewInt(0)}, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 2)
	t.Equal(in.Seller, instructions[1].Recipient)
	t.Equal("43", instructions[1].Coin.Amount)
}

func (t *testsuite) TestNativeSaleRoyaltyToSeller() {
	in := t.nativeInput()

	// self-royalty collapses to a single full payment
	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(&royalty.Info{Recipient: "0xSELLER", Amount: big.NewInt(5)}, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 2)
	t.Equal(in.Seller, instructions[1].Recipient)
	t.Equal("43", instructions[1].Coin.Amount)
}

func (t *testsuite) TestNativeSaleRoyaltyLookupFailure() {
	in := t.nativeInput()

	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(nil, royalty.ErrStatusCodeNotOk)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 2)
	t.Equal(in.Seller, instructions[1].Recipient)
	t.Equal("43", instructions[1].Coin.Amount)
}

func (t *testsuite) TestNativeSaleRoyaltyExceedsPrice() {
	in := t.nativeInput()

	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(&royalty.Info{Recipient: "0xcreator", Amount: big.NewInt(44)}, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.ErrorIs(err, domain.ErrRoyaltyExceedsPrice)
	t.Nil(instructions)
}

func (t *testsuite) TestNativeSaleRoyaltyEqualsPrice() {
	in := t.nativeInput()

	// royalty == price leaves the seller nothing but is not an overflow
	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(43)).
		Return(&royalty.Info{Recipient: "0xcreator", Amount: big.NewInt(43)}, nil)

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 2)
	t.Equal(domain.Address("0xcreator"), instructions[1].Recipient)
	t.Equal("43", instructions[1].Coin.Amount)
}

func (t *testsuite) TestNativeSaleBadPrice() {
	in := t.nativeInput()
	in.Price.Amount = "abc"

	instructions, err := t.subject.SettleNativeSale(mockCtx, in)
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
	t.Nil(instructions)
	t.mockRoyalty.AssertNotCalled(t.T(), "RoyaltyInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestTokenSaleWithRoyalty() {
	in := TokenSaleInput{
		Collection:   "0xcollection",
		TokenId:      "7",
		Seller:       "0xseller",
		Offerer:      "0xofferer",
		TokenAddress: "0xtoken",
		Amount:       "100",
	}

	t.mockRoyalty.
		On("RoyaltyInfo", mockCtx, in.Collection, in.TokenId, big.NewInt(100)).
		Return(&royalty.Info{Recipient: "0xcreator", Amount: big.NewInt(4)}, nil)

	instructions, err := t.subject.SettleTokenSale(mockCtx, in)
	t.NoError(err)
	t.Len(instructions, 3)

	t.Equal(domain.InstructionNftTransfer, instructions[0].Type)
	t.Equal(in.Offerer, instructions[0].Recipient)

	t.Equal(domain.InstructionTokenTransferFrom, instructions[1].Type)
	t.Equal(in.Offerer, instructions[1].From)
	t.Equal(domain.Address("0xcreator"), instructions[1].Recipient)
	t.Equal("4", instructions[1].Amount)

	t.Equal(domain.InstructionTokenTransferFrom, instructions[2].Type)
	t.Equal(in.Offerer, instructions[2].From)
	t.Equal(in.Seller, instructions[2].Recipient)
	t.Equal("96", instructions[2].Amount)
}

func (t *testsuite) TestTokenSaleBadAmount() {
	in := TokenSaleInput{
		Collection:   "0xcollection",
		TokenId:      "7",
		Seller:       "0xseller",
		Offerer:      "0xofferer",
		TokenAddress: "0xtoken",
		Amount:       "-5",
	}

	instructions, err := t.subject.SettleTokenSale(mockCtx, in)
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
	t.Nil(instructions)
}
