// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cms_backend/internal/feature/stats/domain/entity"
	"cms_backend/internal/feature/stats/usecase"
)

// CachingStatsRepository decorates a StatsRepository with Redis caching for
// the public figures. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Admin stats
// are never cached: the dashboard must reflect writes immediately.
type CachingStatsRepository struct {
	inner usecase.StatsRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.StatsRepository = (*CachingStatsRepository)(nil)

// NewCachingStatsRepository decorates a StatsRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If key is empty, it uses "stats:public".
func NewCachingStatsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatsRepository, key string) *CachingStatsRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if key == "" {
		key = "stats:public"
	}
	return &CachingStatsRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// PublicStats retrieves the homepage figures, checking the cache first and
// falling back to the database. Counts drift by at most the TTL.
func (c *CachingStatsRepository) PublicStats(ctx context.Context) (*entity.PublicStats, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.PublicStats(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out entity.PublicStats
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.PublicStats(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}

// AdminStats always goes straight to the underlying repository.
func (c *CachingStatsRepository) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	return c.inner.AdminStats(ctx)
}
