// Package middleware provides HTTP middleware for routegrid.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routegrid/routegrid/internal/httputil"
)

// Limiter tuning. The bucket table is capped so an address sweep cannot
// grow it without bound; stale entries age out on a timer.
const (
	maxBuckets     = 100_000
	bucketMaxAge   = 10 * time.Minute
	sweepInterval  = 5 * time.Minute
	rateLimitedMsg = "rate limit exceeded"
)

// tokenBucket tracks one client's remaining allowance. Tokens are
// fractional so low rates still refill smoothly between requests.
type tokenBucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter applies a per-client-IP token bucket.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	rate    float64
	burst   float64
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec sustained
// requests with the given burst per client IP. A background sweeper
// evicts idle buckets until ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    float64(ratePerSec),
		burst:   float64(burst),
	}
	go rl.sweep(ctx)
	return rl
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, b := range rl.buckets {
				if now.Sub(b.seen) > bucketMaxAge {
					delete(rl.buckets, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// take spends one token for ip, refilling for the time elapsed since the
// last request. Returns false when the bucket is empty or the table is
// full and ip is new.
func (rl *RateLimiter) take(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		if len(rl.buckets) >= maxBuckets {
			return false
		}
		b = &tokenBucket{tokens: rl.burst, seen: now}
		rl.buckets[ip] = b
	} else {
		b.tokens += now.Sub(b.seen).Seconds() * rl.rate
		if b.tokens > rl.burst {
			b.tokens = rl.burst
		}
		b.seen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Handler returns gin middleware enforcing the limit per client IP.
// c.ClientIP() is spoof-safe here because the router disables trusted
// proxy headers.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.take(c.ClientIP()) {
			httputil.RespondError(c, http.StatusTooManyRequests, "rate_limited", rateLimitedMsg)
			return
		}
		c.Next()
	}
}
