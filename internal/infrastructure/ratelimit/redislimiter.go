package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "atgs:ratelimit"

// RedisLimiter implements a sliding window over redis sorted sets. Each
// request is a member scored by its nanosecond timestamp; the window is
// enforced by trimming members older than the window start and counting
// what remains.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	now := time.Now()

	for _, w := range []struct {
		span  time.Duration
		limit int
	}{
		{time.Minute, limits.PerMinute},
		{time.Hour, limits.PerHour},
	} {
		if w.limit <= 0 {
			continue
		}
		ok, err := l.admit(ctx, windowKey(key, w.span), w.span, w.limit, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// admit records the request in the window's sorted set and reports whether
// it was within the limit. The set expires shortly after the window so idle
// keys clean themselves up.
func (l *RedisLimiter) admit(ctx context.Context, redisKey string, span time.Duration, limit int, now time.Time) (bool, error) {
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)
	stamp := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	used := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(stamp), Member: stamp})
	pipe.Expire(ctx, redisKey, span+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit pipeline: %w", err)
	}

	return used.Val() < int64(limit), nil
}

func (l *RedisLimiter) Used(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := windowKey(key, window)
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	used := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit count: %w", err)
	}

	return used.Val(), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyNamespace, key)
	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("rate limit reset %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func windowKey(key string, span time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", keyNamespace, key, span)
}
