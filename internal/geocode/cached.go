package geocode

import (
	"context"
	"fmt"
	"time"

	"uni3_backend/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cached remembers successful lookups in Redis. Failures are never cached.
type Cached struct {
	Next  Reverser
	Redis *redis.Client
	TTL   time.Duration
}

// NewCached wraps next; with a nil client it simply delegates
func NewCached(next Reverser, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{Next: next, Redis: rdb, TTL: ttl}
}

// CacheKey rounds to 6 decimals (about 10cm), finer than any address change
func CacheKey(lat, lon float64) string {
	return fmt.Sprintf("geocode:%.6f:%.6f", lat, lon)
}

func (c *Cached) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	key := CacheKey(lat, lon)
	var addr string
	found, err := utils.GetCache(ctx, c.Redis, key, &addr)
	if err != nil {
		logrus.WithError(err).Warn("geocode cache read failed")
	}
	if found {
		return addr, nil
	}
	addr, err = c.Next.Reverse(ctx, lat, lon)
	if err != nil {
		return "", err
	}
	if err := utils.SetCache(ctx, c.Redis, key, addr, c.TTL); err != nil {
		logrus.WithError(err).Warn("geocode cache write failed")
	}
	return addr, nil
}
