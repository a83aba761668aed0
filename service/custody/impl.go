package custody

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
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

type ownerResp struct {
	Owner domain.Address `json:"owner"`
}

func (c *client) OwnerOf(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	url := fmt.Sprintf("%s/collections/%s/tokens/%s/owner", c.baseUrl, collection, tokenId)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return "", err
	}
	resp := ownerResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return "", err
	}
	return resp.Owner.ToLower(), nil
}

func (c *client) ApprovalOf(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, operator domain.Address) (*Approval, error) {
	url := fmt.Sprintf("%s/collections/%s/tokens/%s/approvals/%s", c.baseUrl, collection, tokenId, operator)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &Approval{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	resp.Operator = resp.Operator.ToLower()
	return resp, nil
}

func (c *client) TransferInstruction(collection domain.Address, tokenId domain.TokenId, recipient domain.Address) domain.Instruction {
	return domain.Instruction{
		Id:         domain.NewInstructionId(),
		Type:       domain.InstructionNftTransfer,
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Recipient:  recipient.ToLower(),
	}
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
