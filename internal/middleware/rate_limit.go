package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Limiter decides whether the client identified by key may make one more
// request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ======================================================
// LOCAL (single process)
// ======================================================

// LocalLimiter keeps one token bucket per key. A bucket idle for a minute
// is full again, so buckets idle longer than localIdleTTL are dropped.
type LocalLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perMin    int
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	defaultPerMin = 60
	localIdleTTL  = 3 * time.Minute
)

func NewLocalLimiter(perMin int) *LocalLimiter {
	if perMin <= 0 {
		perMin = defaultPerMin
	}
	return &LocalLimiter{
		visitors: make(map[string]*visitor),
		perMin:   perMin,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= localIdleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin),
		}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}

// sweep must be called with mu held.
func (l *LocalLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= localIdleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// Len reports how many keys are tracked.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// ======================================================
// REDIS (shared between instances)
// ======================================================

// RedisLimiter counts requests per key in fixed one-minute windows.
type RedisLimiter struct {
	client *redis.Client
	perMin int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, perMin int) *RedisLimiter {
	if perMin <= 0 {
		perMin = defaultPerMin
	}
	return &RedisLimiter{
		client: client,
		perMin: perMin,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := l.now().Unix() / 60
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= int64(l.perMin), nil
}

// ======================================================
// MIDDLEWARE
// ======================================================

// RateLimit rejects clients over their budget. Limiter errors let the
// request through.
func RateLimit(limiter Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ok, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
