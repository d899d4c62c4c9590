// Package cache holds the Redis-backed cache for the public challenge
// listing. Every operation fails open: a cache problem degrades to a
// database read, never to a request failure.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/devforge/devforge-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache connects to Redis. An empty address returns a disabled
// cache; a failed ping is logged and also yields a disabled cache.
func NewListingCache(addr, password string, ttl time.Duration) *ListingCache {
	if addr == "" {
		return &ListingCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unavailable, listing cache disabled", "addr", addr, "error", err)
		return &ListingCache{}
	}

	slog.Info("listing cache connected", "addr", addr, "ttl", ttl)
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) Enabled() bool { return c.client != nil }

func key(tier string) string {
	if tier == "" {
		return "challenges:approved:all"
	}
	return "challenges:approved:tier:" + strings.ToLower(tier)
}

func (c *ListingCache) Get(ctx context.Context, tier string) ([]models.Challenge, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key(tier)).Bytes()
	if err != nil {
		return nil, false
	}
	var challenges []models.Challenge
	if err := json.Unmarshal(data, &challenges); err != nil {
		return nil, false
	}
	return challenges, true
}

func (c *ListingCache) Set(ctx context.Context, tier string, challenges []models.Challenge) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(challenges)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(tier), data, c.ttl).Err(); err != nil {
		slog.Warn("listing cache set failed", "error", err)
	}
}

// Invalidate drops every listing key. Called whenever a challenge is
// created or changes status.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "challenges:approved:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("listing cache scan failed", "error", err)
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			slog.Warn("listing cache invalidation failed", "error", err)
		}
	}
}

func (c *ListingCache) Close() error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
