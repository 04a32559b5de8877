package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/collections-service/internal/domain"
)

const (
	collectionsListKey = "collections:list"
	collectionsListTTL = time.Minute
)

// CollectionCache is a read-through Redis cache for the public collections
// listing. Cache failures degrade to a store read, never to an error.
type CollectionCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCollectionCache builds the cache over an existing client.
func NewCollectionCache(client *redis.Client, logger *zap.Logger) *CollectionCache {
	return &CollectionCache{client: client, logger: logger}
}

// GetList returns the cached listing if present.
func (c *CollectionCache) GetList(ctx context.Context) ([]domain.Collection, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, collectionsListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("collection cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var collections []domain.Collection
	if err := json.Unmarshal(raw, &collections); err != nil {
		c.logger.Warn("collection cache decode failed", zap.Error(err))
		return nil, false
	}
	return collections, true
}

// SetList stores the listing with a short TTL.
func (c *CollectionCache) SetList(ctx context.Context, collections []domain.Collection) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(collections)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, collectionsListKey, raw, collectionsListTTL).Err(); err != nil {
		c.logger.Warn("collection cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing after any collection write.
func (c *CollectionCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, collectionsListKey).Err(); err != nil {
		c.logger.Warn("collection cache invalidate failed", zap.Error(err))
	}
}
