package listingform

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/cache"
)

const (
	guardKeyPrefix  = "listing:submit:"
	DefaultGuardTTL = 30 * time.Second
)

// Guard refuses overlapping submissions for the same key
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RedisGuard holds a SETNX lock per key so parallel requests cannot save twice
type RedisGuard struct {
	TTL time.Duration
}

func NewRedisGuard() *RedisGuard {
	return &RedisGuard{TTL: DefaultGuardTTL}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	ok, err := cache.SetNX(ctx, guardKeyPrefix+key, time.Now().Unix(), g.TTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSubmitPending
	}
	return func() {
		if err := cache.Delete(context.WithoutCancel(ctx), guardKeyPrefix+key); err != nil {
			slog.Warn("[Listing] failed to release submit guard", "key", key, "error", err)
		}
	}, nil
}

// MemoryGuard is the in-process Guard
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

func (g *MemoryGuard) Acquire(ctx context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.held[key]; ok {
		return nil, ErrSubmitPending
	}
	g.held[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.held, key)
		g.mu.Unlock()
	}, nil
}
