package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "hospital-api/internal/transport/http/response"
)

// RateLimit 全局令牌桶限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Body{Message: "Too many requests"})
	}
}

const (
	ipBucketCap  = 4096
	ipBucketIdle = 10 * time.Minute
)

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipBuckets 带淘汰的每 IP 桶表，防止换 IP 的流量把 map 撑爆
type ipBuckets struct {
	mu      sync.Mutex
	entries map[string]*ipBucket
	rps     rate.Limit
	burst   int
}

func newIPBuckets(rps rate.Limit, burst int) *ipBuckets {
	return &ipBuckets{entries: map[string]*ipBucket{}, rps: rps, burst: burst}
}

func (b *ipBuckets) get(ip string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	e, ok := b.entries[ip]
	if !ok {
		if len(b.entries) >= ipBucketCap {
			b.evict(now)
		}
		e = &ipBucket{lim: rate.NewLimiter(b.rps, b.burst)}
		b.entries[ip] = e
	}
	e.lastSeen = now
	return e.lim
}

// evict 先清闲置的；全都活跃就挤掉一个，宁可丢限速状态也不无限增长
func (b *ipBuckets) evict(now time.Time) {
	for ip, e := range b.entries {
		if now.Sub(e.lastSeen) > ipBucketIdle {
			delete(b.entries, ip)
		}
	}
	if len(b.entries) >= ipBucketCap {
		for ip := range b.entries {
			delete(b.entries, ip)
			break
		}
	}
}

// RateLimitPerIP 每 IP 限速
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	buckets := newIPBuckets(rps, burst)
	return func(c *gin.Context) {
		if buckets.get(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Body{Message: "Too many requests"})
	}
}
