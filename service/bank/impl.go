package bank

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/domain"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: cfg.BaseUrl,
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
}

type amountResp struct {
	Amount string `json:"amount"`
}

func (c *client) BalanceOf(ctx bCtx.Ctx, owner domain.Address, denom string) (*big.Int, error) {
	url := fmt.Sprintf("%s/balances/%s/%s", c.baseUrl, owner, denom)
	return c.getAmount(ctx, url)
}

func (c *client) Allowance(ctx bCtx.Ctx, owner, spender, tokenAddress domain.Address) (*big.Int, error) {
	url := fmt.Sprintf("%s/tokens/%s/allowances/%s/%s", c.baseUrl, tokenAddress, owner, spender)
	return c.getAmount(ctx, url)
}

func (c *client) SendInstruction(recipient domain.Address, coin domain.Coin) domain.Instruction {
	return domain.Instruction{
		Id:        domain.NewInstructionId(),
		Type:      domain.InstructionNativeSend,
		Coin:      &coin,
		Recipient: recipient.ToLower(),
	}
}

func (c *client) TransferFromInstruction(tokenAddress, from, recipient domain.Address, amount string) domain.Instruction {
	return domain.Instruction{
		Id:           domain.NewInstructionId(),
		Type:         domain.InstructionTokenTransferFrom,
		TokenAddress: tokenAddress.ToLower(),
		From:         from.ToLower(),
		Amount:       amount,
		Recipient:    recipient.ToLower(),
	}
}

func (c *client) getAmount(ctx bCtx.Ctx, url string) (*big.Int, error) {
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := amountResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	amount, ok := new(big.Int).SetString(resp.Amount, 10)
	if !ok {
		ctx.WithField("amount", resp.Amount).Error("malformed amount")
		return nil, domain.ErrInvalidNumberFormat
	}
	return amount, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
