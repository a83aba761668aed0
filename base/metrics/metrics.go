package metrics

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/aura-nw/marketplace-api/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// ddClientsIdx is used for accessing ddClients by round robin scheduling
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	port := viper.GetInt("datadog_port")
	if port == 0 {
		port = 8125
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	ddClients = make([]statsCli, ddClientsSize)
	for i := 0; i < ddClientsSize; i++ {
		log.Log().WithFields(log.Fields{"addr": addr, "idx": i}).Info("connecting to datadog agent")

		var err error
		ddClients[i], err = statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic(
				"can't talk to datadog agent")
		}
	}
}

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Service is the metrics surface the rest of the codebase depends on.
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) interface{ End() }
	BumpErr(key string, tags ...string)
}

// DDMetrics sends counters and timers to a local datadog agent.
type DDMetrics struct {
	ddTags []string
}

// New creates a DDMetrics tagged with the given app name.
func New(app string) *DDMetrics {
	return &DDMetrics{ddTags: []string{"app:" + app}}
}

func (dm *DDMetrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	if err := ddClients[i].Count(key, int64(val), append(dm.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val}).Error("BumpSum fail")
	}
}

// BumpTime starts a timer. Call End on the returned value to report it:
//
//     defer m.BumpTime("listing.buy").End()
func (dm *DDMetrics) BumpTime(key string, tags ...string) interface{ End() } {
	initOnce.Do(initDDClient)
	return &ddTimeTracker{
		start: time.Now(),
		key:   key,
		tags:  append(dm.ddTags, parseTag(tags)...),
	}
}

func (dm *DDMetrics) BumpErr(key string, tags ...string) {
	dm.BumpSum(key+".err", 1, tags...)
}

type ddTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *ddTimeTracker) End() {
	elapsed := float64(time.Since(t.start)) / float64(time.Millisecond)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	if err := ddClients[i].TimeInMilliseconds(t.key, elapsed, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("BumpTime fail")
	}
}

// parseTag pairs up positional tag arguments into datadog key:value tags.
func parseTag(tags []string) []string {
	res := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, strings.Join([]string{tags[i], tags[i+1]}, ":"))
	}
	return res
}
