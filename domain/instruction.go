package domain

import "github.com/google/uuid"

// InstructionType discriminates the outgoing instruction union.
type InstructionType string

const (
	// InstructionNftTransfer moves an nft to Recipient via the custody service
	InstructionNftTransfer InstructionType = "nft_transfer"
	// InstructionNativeSend moves native currency to Recipient via the ledger
	InstructionNativeSend InstructionType = "native_send"
	// InstructionTokenTransferFrom draws fungible tokens from From's allowance
	InstructionTokenTransferFrom InstructionType = "token_transfer_from"
)

// Instruction is one entry of the ordered side-effect bundle a trade
// produces. The engine only decides what must happen; the host executes
// the bundle after the operation commits.
type Instruction struct {
	Id   string          `json:"id" bson:"id"`
	Type InstructionType `json:"type" bson:"type"`

	// nft_transfer
	Collection Address `json:"collection,omitempty" bson:"collection,omitempty"`
	TokenId    TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`

	// native_send
	Coin *Coin `json:"coin,omitempty" bson:"coin,omitempty"`

	// token_transfer_from
	TokenAddress Address `json:"tokenAddress,omitempty" bson:"tokenAddress,omitempty"`
	From         Address `json:"from,omitempty" bson:"from,omitempty"`
	Amount       string  `json:"amount,omitempty" bson:"amount,omitempty"`

	Recipient Address `json:"recipient" bson:"recipient"`
}

func NewInstructionId() string {
	return uuid.NewString()
}
