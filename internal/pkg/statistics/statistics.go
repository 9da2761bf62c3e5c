package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/cache"
)

const (
	CacheKeyModerationStats = "statistics:moderation"
	CacheExpiration         = 30 * time.Minute
)

// Source computes fresh moderation statistics, usually the report repository
type Source interface {
	Stats(ctx context.Context) (*models.ModerationStats, error)
}

// jsonCache is the slice of the cache package used here
type jsonCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type redisCache struct{}

func (redisCache) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	return cache.GetJSON(ctx, key, dst)
}

func (redisCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return cache.SetJSON(ctx, key, value, expiration)
}

var store jsonCache = redisCache{}

// GetModerationStats returns the cached statistics or computes and caches them.
// Cache failures are logged and fall through to src.
func GetModerationStats(ctx context.Context, src Source) (*models.ModerationStats, error) {
	var cached models.ModerationStats
	hit, err := store.GetJSON(ctx, CacheKeyModerationStats, &cached)
	if err != nil {
		slog.Warn("[Statistics] cache read failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	stats, err := src.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.SetJSON(ctx, CacheKeyModerationStats, stats, CacheExpiration); err != nil {
		slog.Warn("[Statistics] cache write failed", "error", err)
	}
	return stats, nil
}
