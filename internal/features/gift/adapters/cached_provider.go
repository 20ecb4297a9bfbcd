package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gift-lookup/internal/core/cache"
	"gift-lookup/internal/core/logger"
	"gift-lookup/internal/features/gift/domain"
	"gift-lookup/internal/features/gift/ports"

	"go.uber.org/zap"
)

// CachedOrderProvider wraps an OrderProvider with a short-TTL cache of the
// fetched order window. It caches the raw window only, never a resolved
// lookup, so no customer-identity data is ever keyed or stored. The cache
// is an optimization against upstream rate limits: any cache failure falls
// through to the inner provider.
type CachedOrderProvider struct {
	inner ports.OrderProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedOrderProvider creates a caching decorator over the given provider.
func NewCachedOrderProvider(inner ports.OrderProvider, c cache.Cache, ttl time.Duration) *CachedOrderProvider {
	return &CachedOrderProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// RecentOrders returns the cached window when fresh, otherwise fetches and
// repopulates the cache.
func (p *CachedOrderProvider) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	key := cacheKey(limit)

	if data, err := p.cache.Get(ctx, key); err == nil {
		var orders []domain.Order
		if err := json.Unmarshal(data, &orders); err == nil {
			return orders, nil
		}
		logger.Get().Warn("Discarding undecodable cached order window", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Get().Warn("Order window cache read failed", zap.String("key", key), zap.Error(err))
	}

	orders, err := p.inner.RecentOrders(ctx, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(orders); err == nil {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			logger.Get().Warn("Order window cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return orders, nil
}

// cacheKey includes the limit so windows of different sizes never mix.
func cacheKey(limit int) string {
	return fmt.Sprintf("gift_orders:%d", limit)
}
