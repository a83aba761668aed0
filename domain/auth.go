package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/aura-nw/marketplace-api/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GenerateNonce issues a short-lived nonce the wallet must sign to
	// obtain a token.
	GenerateNonce(ctx ctx.Ctx, address Address) (string, error)
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (string, error)
}
