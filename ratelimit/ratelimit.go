package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"slotbook/utils"
)

// Limiter is a fixed-window rate limiter backed by Redis, keyed by client IP.
// The counter lives in Redis rather than process memory so multiple instances
// share one window.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func New(rdb *redis.Client, limit int, window time.Duration, prefix string) *Limiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = "rl"
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Handle is the Fiber middleware. Redis errors fail open with a warning so a
// limiter outage never takes logins down with it.
func (l *Limiter) Handle(c *fiber.Ctx) error {
	key := l.prefix + ":" + c.IP()

	count, err := l.incr(c.Context(), key)
	if err != nil {
		log.Printf("ratelimit: redis error: %v", err)
		return c.Next()
	}
	if count > int64(l.limit) {
		return c.Status(fiber.StatusTooManyRequests).JSON(utils.ErrorResponse{
			Message: "Too many attempts, try again later",
		})
	}
	return c.Next()
}

func (l *Limiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	n, ok := res.(int64)
	if !ok {
		return 0, nil
	}
	return n, nil
}
