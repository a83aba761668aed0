package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/metrics"
	"github.com/aura-nw/marketplace-api/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New redis service over one pool
func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  met,
		pool: pool,
	}
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn := r.pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// because the longer a connection is held the more connections the
	// pool needs to handle at the same time.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	defer r.met.BumpTime("time", "func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	defer r.met.BumpTime("time", "func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	var err error
	if ttl > 0 {
		_, err = r.connDo(context, "SET", key, value, "EX", int(ttl.Seconds()))
	} else {
		_, err = r.connDo(context, "SET", key, value)
	}
	return err
}

func (r *redImpl) Del(context ctx.Ctx, key string) (int64, error) {
	defer r.met.BumpTime("time", "func", "del", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	return redis.Int64(r.connDo(context, "DEL", key))
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int64, error) {
	defer r.met.BumpTime("time", "func", "ttl", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	ttl, err := redis.Int64(r.connDo(context, "TTL", key))
	if err != nil {
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", "func", "exists", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	return redis.Bool(r.connDo(context, "EXISTS", key))
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", "func", "incrby", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	return redis.Int64(r.connDo(context, "INCRBY", key, val))
}
