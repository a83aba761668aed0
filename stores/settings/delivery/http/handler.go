package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/delivery"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/settings"
	authMiddleware "github.com/aura-nw/marketplace-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	settings settings.UseCase
}

func New(e *echo.Echo, settingsUC settings.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{settingsUC}

	g := e.Group("/settings")

	g.GET("", h.get)

	g.PUT("/payment-token", h.updatePaymentToken, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.settings.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) updatePaymentToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		PaymentToken domain.Address `json:"paymentToken" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.settings.UpdatePaymentToken(ctx, p.PaymentToken)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
