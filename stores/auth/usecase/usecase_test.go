package usecase_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/domain/keys"
	"github.com/aura-nw/marketplace-api/service/redis"
	mRedis "github.com/aura-nw/marketplace-api/service/redis/mocks"
	"github.com/aura-nw/marketplace-api/stores/auth/usecase"
)

const signatureMsg = "Sign this message to login: %s"

func TestSignAndParseToken(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := strings.ToLower(crypto.PubkeyToAddress(privateKey.PublicKey).Hex())

	nonce := "my-nonce"
	msg := []byte("Sign this message to login: " + nonce)
	signature, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	assert.NoError(t, err)

	mockRedis := &mRedis.Service{}
	key := keys.RedisKey(keys.PfxNonce, address)
	mockRedis.On("Get", mock.Anything, key).Return([]byte(nonce), nil)
	mockRedis.On("Del", mock.Anything, key).Return(int64(1), nil)

	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:    "jwt-secret",
		SignatureMsg: signatureMsg,
		Redis:        mockRedis,
	})

	tkn, err := u.SignToken(c, domain.Address(address), hexutil.Encode(signature))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address, ads)
}

func TestSignTokenWithoutNonce(t *testing.T) {
	mockRedis := &mRedis.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound)

	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:    "jwt-secret",
		SignatureMsg: signatureMsg,
		Redis:        mockRedis,
	})

	_, err := u.SignToken(ctx.Background(), "0xabc", "0xdeadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestSignTokenWrongSigner(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	assert.NoError(t, err)

	nonce := "my-nonce"
	msg := []byte("Sign this message to login: " + nonce)
	signature, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	assert.NoError(t, err)

	mockRedis := &mRedis.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte(nonce), nil)

	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:    "jwt-secret",
		SignatureMsg: signatureMsg,
		Redis:        mockRedis,
	})

	// signed by privateKey but claimed by another address
	_, err = u.SignToken(ctx.Background(), "0x0000000000000000000000000000000000000001", hexutil.Encode(signature))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestGenerateNonce(t *testing.T) {
	mockRedis := &mRedis.Service{}
	mockRedis.On("Set", mock.Anything, keys.RedisKey(keys.PfxNonce, "0xabc"), mock.Anything, mock.Anything).Return(nil)

	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:    "jwt-secret",
		SignatureMsg: signatureMsg,
		Redis:        mockRedis,
	})

	nonce, err := u.GenerateNonce(ctx.Background(), "0xABC")
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce)
}
