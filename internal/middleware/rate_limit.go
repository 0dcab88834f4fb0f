package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/redisx"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// lastSeen holds unix nanos; it is touched on the lock-free load path
	// and read by the cleanup goroutine, so it must be atomic.
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{r: r, b: b}
	go i.cleanupLoop()
	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch()
	i.ips.Store(ip, c)
	return c.limiter
}

func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getLimiter(ip).Allow()
}

// sweep drops entries that have not been seen within maxIdle.
func (i *IPRateLimiter) sweep(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle).UnixNano()
	i.ips.Range(func(key, value interface{}) bool {
		c := value.(*client)
		if c.lastSeen.Load() < cutoff {
			i.ips.Delete(key)
		}
		return true
	})
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.sweep(3 * time.Minute)
	}
}

// RateLimit limits by client IP. With Redis available it uses a shared
// fixed window so multiple instances see the same counters; otherwise it
// falls back to a per-process token bucket.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 5
	}
	if burst < 1 {
		burst = int(rps)
	}
	local := NewIPRateLimiter(rate.Limit(rps), burst)
	window := time.Second
	maxPerWindow := int64(rps) + int64(burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if rdb := redisx.Client(); rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			key := redisx.Key("rate", "ip", ip, strconv.FormatInt(time.Now().Unix(), 10))
			count, err := rdb.Incr(ctx, key).Result()
			if err == nil {
				_ = rdb.Expire(ctx, key, window).Err()
				cancel()
				if count > maxPerWindow {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			cancel()
			// Redis hiccup: fall through to the local limiter.
		}

		if !local.Allow(ip) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
