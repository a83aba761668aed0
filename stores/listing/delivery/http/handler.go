package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/delivery"
	"github.com/aura-nw/marketplace-api/base/pricefmt"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/listing"
	"github.com/aura-nw/marketplace-api/middleware"
	authMiddleware "github.com/aura-nw/marketplace-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

type listingResp struct {
	*listing.Listing
	DisplayPrice string `json:"displayPrice,omitempty"`
}

func toListingResp(l *listing.Listing) listingResp {
	res := listingResp{Listing: l}
	if l.AuctionConfig.Kind == listing.AuctionKindFixedPrice && l.AuctionConfig.FixedPrice != nil {
		if d, err := pricefmt.FormatCoin(l.AuctionConfig.FixedPrice.Price, pricefmt.DefaultDecimals); err == nil {
			res.DisplayPrice = d.String()
		}
	}
	return res
}

func New(e *echo.Echo, listingUC listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listingUC}

	gs := e.Group("/listings")

	gs.GET("", h.getByCollection, middleware.CacheHttp(10*time.Second))

	gs.POST("", h.list, authMiddleware.Auth())

	g := e.Group("/listings/:collection/:tokenId", middleware.IsValidAddress("collection"))

	g.GET("", h.get)

	g.POST("/buy", h.buy, authMiddleware.Auth())

	g.DELETE("", h.cancel, authMiddleware.Auth())
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Collection    domain.Address        `json:"collection" validate:"required"`
		TokenId       domain.TokenId        `json:"tokenId" validate:"required"`
		AuctionConfig listing.AuctionConfig `json:"auctionConfig" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.Id{Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.listing.List(ctx, id, p.AuctionConfig, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		Funds      domain.Coin    `json:"funds" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.Id{Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.listing.Buy(ctx, id, address, p.Funds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.Id{Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.listing.Cancel(ctx, id, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	id := listing.Id{Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toListingResp(res))
}

func (h *handler) getByCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Collection domain.Address  `query:"collection" validate:"required"`
		StartAfter *domain.TokenId `query:"startAfter"`
		Limit      *int32          `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.GetByCollection(ctx, p.Collection, p.StartAfter, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	items := make([]listingResp, 0, len(res))
	for _, l := range res {
		items = append(items, toListingResp(l))
	}

	return delivery.MakeJsonResp(c, http.StatusOK, items)
}
