package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/delivery"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/auction"
	authMiddleware "github.com/aura-nw/marketplace-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auctionUC auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{auctionUC}

	g := e.Group("/auction-contracts")

	g.GET("", h.getAll)

	g.POST("", h.add, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.DELETE("/:address", h.remove, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.Contract{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Add(ctx, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, p)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	if err := h.auction.Remove(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.GetAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
