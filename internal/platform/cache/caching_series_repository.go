package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"smartledger_backend/internal/feature/charts/usecase"
)

// CachingSeriesRepository decorates a SeriesRepository with Redis caching.
// Charts have the longest freshness window of the service, so sharing them
// across restarts through Redis is worthwhile. With a nil client the
// decorator is a transparent pass-through.
type CachingSeriesRepository struct {
	inner     usecase.SeriesRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SeriesRepository = (*CachingSeriesRepository)(nil)

// NewCachingSeriesRepository decorates a SeriesRepository with Redis caching.
// If ttl is 0, it defaults to 60 minutes. If namespace is empty, it uses "charts".
func NewCachingSeriesRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SeriesRepository, namespace string) *CachingSeriesRepository {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingSeriesRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetDailySeries retrieves a daily price series, checking Redis first and
// falling back to the underlying repository on a miss.
func (c *CachingSeriesRepository) GetDailySeries(ctx context.Context, symbol string) ([]usecase.Point, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetDailySeries(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []usecase.Point
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the live provider
	out, err := c.inner.GetDailySeries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a symbol.
func (c *CachingSeriesRepository) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(symbol))
}

// safe normalizes key fragments so user input cannot inject separators.
func safe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '*', '?':
			return '_'
		}
		return r
	}, s)
}
