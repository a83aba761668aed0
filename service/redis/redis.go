package redis

import (
	"errors"
	"time"

	"github.com/aura-nw/marketplace-api/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")
)

// Service is a thin wrapper over a redigo pool
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(context ctx.Ctx, key string) (int64, error)
	TTL(context ctx.Ctx, key string) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
