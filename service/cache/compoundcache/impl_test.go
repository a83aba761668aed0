package compoundcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/service/cache"
	"github.com/aura-nw/marketplace-api/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im       *impl
	service1 cache.Service
	service2 cache.Service
}

func (ts *testsuite) SetupTest() {
	ts.service1 = cache.New(cache.ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})

	ts.service2 = cache.New(cache.ServiceConfig{
		Ttl:   2 * time.Second,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test2", 1),
	})

	ts.im = NewCompoundCache([]cache.Service{
		ts.service1,
		ts.service2,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGetBackfillsFrontLayers() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(cache.ErrNotFound, ts.im.Get(mockCtx, k, c))

	// seed only the slow layer
	ts.NoError(ts.service2.Set(mockCtx, k, v))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	// the fast layer was backfilled by the read
	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetWritesAllLayers() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	ts.NoError(ts.service2.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))
	ts.Equal(v, *c)

	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestDelClearsAllLayers() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.Del(mockCtx, k))

	ts.Equal(cache.ErrNotFound, ts.service1.Get(mockCtx, k, c))
	ts.Equal(cache.ErrNotFound, ts.service2.Get(mockCtx, k, c))
}
