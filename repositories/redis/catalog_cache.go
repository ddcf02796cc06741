package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"time"

	// Local Packages
	models "pos-engine/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultCatalogKey = "pos:catalog"
	defaultCatalogTTL = 5 * time.Minute
)

// CatalogSource is the data source the cache sits in front of.
type CatalogSource interface {
	FetchTransactionData(ctx context.Context) (*models.TransactionData, error)
}

// CatalogCache keeps the catalog snapshot in Redis. Redis failures are logged
// and the wrapped source is used instead; they never fail a fetch.
type CatalogCache struct {
	client *redis.Client
	source CatalogSource
	logger *zap.Logger
	key    string
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, source CatalogSource, key string, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	if key == "" {
		key = defaultCatalogKey
	}
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{client: client, source: source, logger: logger, key: key, ttl: ttl}
}

func (c *CatalogCache) FetchTransactionData(ctx context.Context) (*models.TransactionData, error) {
	if data, ok := c.get(ctx); ok {
		return data, nil
	}

	data, err := c.source.FetchTransactionData(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, data)
	return data, nil
}

// Invalidate drops the cached snapshot.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func (c *CatalogCache) get(ctx context.Context) (*models.TransactionData, bool) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		c.logger.Debug("catalog cache miss", zap.String("key", c.key))
		return nil, false
	}
	if err != nil {
		c.logger.Error("failed to read catalog cache", zap.String("key", c.key), zap.Error(err))
		return nil, false
	}

	var data models.TransactionData
	if err := json.Unmarshal(raw, &data); err != nil {
		c.logger.Error("failed to unmarshal cached catalog", zap.String("key", c.key), zap.Error(err))
		return nil, false
	}

	c.logger.Debug("catalog cache hit", zap.String("key", c.key))
	return &data, true
}

func (c *CatalogCache) set(ctx context.Context, data *models.TransactionData) {
	raw, err := json.Marshal(data)
	if err != nil {
		c.logger.Error("failed to marshal catalog", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.logger.Error("failed to store catalog", zap.String("key", c.key), zap.Error(err))
		return
	}
	c.logger.Debug("catalog cached", zap.String("key", c.key), zap.Duration("ttl", c.ttl))
}
