package middlewares

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const reportWindow = 24 * time.Hour

// Counter counts hits per key inside a fixed window starting at the first hit.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, retryAfter time.Duration, err error)
}

type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (rc *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	k := rc.prefix + ":" + key

	count, err := rc.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, 0, err
	}

	// Set TTL only for the first increment
	if count == 1 {
		if err := rc.client.Expire(ctx, k, window).Err(); err != nil {
			return count, 0, err
		}
		return count, window, nil
	}

	ttl, err := rc.client.TTL(ctx, k).Result()
	if err != nil {
		return count, 0, err
	}
	return count, ttl, nil
}

type memoryWindow struct {
	count int64
	reset time.Time
}

type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{windows: make(map[string]*memoryWindow), now: time.Now}
}

func (mc *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := mc.now()
	w, ok := mc.windows[key]
	if !ok || !now.Before(w.reset) {
		w = &memoryWindow{reset: now.Add(window)}
		mc.windows[key] = w
	}
	w.count++
	return w.count, w.reset.Sub(now), nil
}

const reportQuotaKey = "report_quota"

type reportQuota struct {
	counter Counter
	limit   int
	limited func(c *gin.Context, retryAfter time.Duration)
}

// ReportRateLimiter caps report submissions per user and day. It only arms the
// quota: a submission is counted by TakeReportQuota once it passed validation.
// limited renders the refusal; when nil a JSON 429 is sent.
func ReportRateLimiter(counter Counter, limit int, limited func(c *gin.Context, retryAfter time.Duration)) gin.HandlerFunc {
	q := &reportQuota{counter: counter, limit: limit, limited: limited}
	return func(c *gin.Context) {
		c.Set(reportQuotaKey, q)
		c.Next()
	}
}

// TakeReportQuota counts one submission for the current user. It returns false
// with the refusal already written once the daily cap is exceeded. Without a
// ReportRateLimiter in the chain every submission is allowed.
func TakeReportQuota(c *gin.Context) bool {
	v, _ := c.Get(reportQuotaKey)
	q, _ := v.(*reportQuota)
	if q == nil || q.limit <= 0 {
		return true
	}

	id := CurrentIdentity(c)
	if id.SubjectID == "" {
		return true
	}

	count, retryAfter, err := q.counter.Incr(c.Request.Context(), id.SubjectID, reportWindow)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "rate limiter unavailable", "error", err)
		return true
	}
	if count <= int64(q.limit) {
		return true
	}

	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	if q.limited != nil {
		q.limited(c, retryAfter)
	} else {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "rate limit exceeded",
			"retry_after": retryAfter.Seconds(),
		})
	}
	c.Abort()
	return false
}
