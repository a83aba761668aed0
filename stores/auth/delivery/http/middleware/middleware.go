package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/delivery"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/settings"
)

type AuthMiddleware struct {
	auth         domain.AuthUsecase
	settingsRepo settings.Repo
}

func New(auth domain.AuthUsecase, settingsRepo settings.Repo) *AuthMiddleware {
	return &AuthMiddleware{
		auth:         auth,
		settingsRepo: settingsRepo,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdmin only admits the marketplace owner recorded in settings.
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			address := c.Get("address").(domain.Address)

			cfg, err := m.settingsRepo.Get(ctx)
			if err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			}

			if !cfg.Owner.Equals(address) {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", domain.Address(ads))
		return true, nil
	}
}
