package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/ethereum"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/keys"
	"github.com/aura-nw/marketplace-api/service/redis"
)

const nonceTtl = 10 * time.Minute

type AuthUseCaseCfg struct {
	JwtSecret    string
	SignatureMsg string
	Redis        redis.Service
}

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	redis        redis.Service
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		jwtSecret:    []byte(cfg.JwtSecret),
		signatureMsg: cfg.SignatureMsg,
		redis:        cfg.Redis,
	}
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	key := keys.RedisKey(keys.PfxNonce, string(address.ToLower()))
	if err := im.redis.Set(c, key, []byte(nonce), nonceTtl); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return "", err
	}
	return nonce, nil
}

// SignToken exchanges a signature over the nonce message for a jwt. The
// nonce is single use: it is cleared as soon as a signature is validated
// against it.
func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	address = address.ToLower()

	key := keys.RedisKey(keys.PfxNonce, string(address))
	nonce, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return "", err
	}

	msg := []byte(fmt.Sprintf(im.signatureMsg, string(nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("err", err).Error("ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !isValid {
		return "", domain.ErrInvalidSignature
	}

	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).Error("redis.Del failed")
	}

	claims := domain.JwtCustomClaims{
		Address: string(address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrUnauthorized
}
