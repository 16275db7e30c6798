package serverutils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed credential checks per email+ip pair.
// A nil redis client disables limiting rather than failing logins.
type LoginLimiter struct {
	rdb      *redis.Client
	attempts int
	window   time.Duration
}

func NewLoginLimiter(rdb *redis.Client, attempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		rdb:      rdb,
		attempts: attempts,
		window:   window,
	}
}

func (l *LoginLimiter) key(email, ip string) string {
	return fmt.Sprintf("login_attempts:%s:%s", email, ip)
}

// Allow reports whether another attempt may proceed.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) bool {
	if l == nil || l.rdb == nil {
		return true
	}
	n, err := l.rdb.Get(ctx, l.key(email, ip)).Int()
	if err != nil {
		return true
	}
	return n < l.attempts
}

// RecordFailure bumps the counter and arms the window on first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email, ip string) {
	if l == nil || l.rdb == nil {
		return
	}
	key := l.key(email, ip)
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email, ip string) {
	if l == nil || l.rdb == nil {
		return
	}
	l.rdb.Del(ctx, l.key(email, ip))
}
