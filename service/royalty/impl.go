package royalty

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/big"
	"net/http"
	"net/url"
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

type royaltyResp struct {
	Recipient domain.Address `json:"recipient"`
	Amount    string         `json:"amount"`
}

func (c *client) RoyaltyInfo(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId, salePrice *big.Int) (*Info, error) {
	params := url.Values{
		"salePrice": {salePrice.String()},
	}
	u := fmt.Sprintf("%s/collections/%s/tokens/%s/royalty?%s", c.baseUrl, collection, tokenId, params.Encode())
	data, err := c.get(ctx, u)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := royaltyResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	amount, ok := new(big.Int).SetString(resp.Amount, 10)
	if !ok {
		ctx.WithField("amount", resp.Amount).Error("malformed royalty amount")
		return nil, domain.ErrInvalidNumberFormat
	}
	return &Info{
		Recipient: resp.Recipient.ToLower(),
		Amount:    amount,
	}, nil
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
