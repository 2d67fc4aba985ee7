package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ninetyarc/ninetyarc/utils"
)

type clientLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// RateLimiterStore holds per-client token buckets. It is injected into the
// middleware rather than living as a package-level singleton, so routers and
// tests own their limiter state.
type RateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

// NewRateLimiterStore builds a store allowing perMinute requests per client.
func NewRateLimiterStore(perMinute int) *RateLimiterStore {
	if perMinute < 1 {
		perMinute = 1
	}
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}
	return &RateLimiterStore{
		limiters: map[string]*clientLimiter{},
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		ttl:      5 * time.Minute,
	}
}

// Allow consumes one token from the client's bucket, creating it on first use.
func (s *RateLimiterStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, l := range s.limiters {
		if now.After(l.expires) {
			delete(s.limiters, k)
		}
	}

	l, ok := s.limiters[key]
	if !ok {
		l = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[key] = l
	}
	l.expires = now.Add(s.ttl)
	return l.limiter.Allow()
}

// RateLimit applies an IP based token-bucket limit backed by the given store.
func RateLimit(store *RateLimiterStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !store.Allow(ctx.ClientIP()) {
			utils.Error(ctx, 429, 42901, "rate limit exceeded")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
