package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/delivery"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/order"
	authMiddleware "github.com/aura-nw/marketplace-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	order order.UseCase
}

func New(e *echo.Echo, orderUC order.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{orderUC}

	gs := e.Group("/offers")

	gs.GET("", h.getOffers, authMiddleware.OptionalAuth())

	gs.POST("", h.makeOffer, authMiddleware.Auth())

	gs.DELETE("", h.cancelAllOffers, authMiddleware.Auth())

	g := e.Group("/offers/:collection/:tokenId")

	g.POST("/accept", h.acceptOffer, authMiddleware.Auth())

	g.DELETE("", h.cancelOffer, authMiddleware.Auth())
}

func (h *handler) makeOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		Amount     string         `json:"amount" validate:"required"`
		EndTime    time.Time      `json:"endTime" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := order.Id{Offerer: address, Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.order.MakeOffer(ctx, id, p.Amount, p.EndTime)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		Offerer    domain.Address `json:"offerer" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := order.Id{Offerer: p.Offerer, Collection: p.Collection, TokenId: p.TokenId}
	res, err := h.order.AcceptOffer(ctx, id, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancelOffer(c echo.Context) error {
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

	id := order.Id{Offerer: address, Collection: p.Collection, TokenId: p.TokenId}
	if err := h.order.CancelOffer(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancelAllOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.order.CancelAllOffers(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offerer          *domain.Address `query:"offerer"`
		Collection       *domain.Address `query:"collection"`
		TokenId          *domain.TokenId `query:"tokenId"`
		OffererBefore    *domain.Address `query:"offererBefore"`
		CollectionBefore *domain.Address `query:"collectionBefore"`
		TokenIdBefore    *domain.TokenId `query:"tokenIdBefore"`
		Limit            *int32          `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	// an authenticated caller with no filters browses their own offers
	if p.Offerer == nil && p.Collection == nil && p.TokenId == nil {
		if address, ok := c.Get("address").(domain.Address); ok {
			p.Offerer = &address
		}
	}

	// queries must be anchored to an nft or an offerer, never a full scan
	if p.Offerer == nil && (p.Collection == nil || p.TokenId == nil) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	// the offerer cursor pages across offerers and only makes sense under
	// an nft anchor
	if p.OffererBefore != nil && p.Offerer != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []order.FindAllOptionsFunc{}

	if p.Offerer != nil {
		opts = append(opts, order.WithOfferer(*p.Offerer))
	}

	if p.Collection != nil && p.TokenId != nil {
		opts = append(opts, order.WithNft(*p.Collection, *p.TokenId))
	}

	if p.OffererBefore != nil {
		opts = append(opts, order.WithOffererBefore(*p.OffererBefore))
	}

	if p.CollectionBefore != nil && p.TokenIdBefore != nil {
		opts = append(opts, order.WithNftBefore(*p.CollectionBefore, *p.TokenIdBefore))
	}

	if p.Limit != nil {
		opts = append(opts, order.WithLimit(*p.Limit))
	}

	res, err := h.order.GetOffers(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
