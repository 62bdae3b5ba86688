package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:category:"

	defaultCacheTTL = 5 * time.Minute
)

// CacheManager handles the redis read-through cache for catalog responses.
// A nil client disables caching; every method then degrades to a miss.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCacheManager(client *redis.Client, log *zap.Logger) *CacheManager {
	return &CacheManager{
		redis: client,
		ttl:   defaultCacheTTL,
		log:   log,
	}
}

func (cm *CacheManager) get(ctx context.Context, key string, out interface{}) bool {
	if cm.redis == nil {
		return false
	}

	data, err := cm.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		cm.log.Warn("failed to unmarshal cached catalog entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (cm *CacheManager) set(ctx context.Context, key string, value interface{}) {
	if cm.redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		cm.log.Warn("failed to marshal catalog entry for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := cm.redis.Set(ctx, key, data, cm.ttl).Err(); err != nil {
		cm.log.Warn("failed to cache catalog entry", zap.String("key", key), zap.Error(err))
	}
}

func productDetailKey(productID string) string {
	return productCachePrefix + productID
}

func productListKey(categoryID string) string {
	return productListCachePrefix + categoryID
}
