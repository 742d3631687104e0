package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/repository/redis/converter"
	"github.com/DRSN-tech/lca-catalog/pkg/clients"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const classificationKeyPrefix = "classification:"

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ClassificationConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ClassificationConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProductClassification возвращает закэшированную классификацию.
// Промах и повреждённая запись дают nil без ошибки.
func (c *CacheRepo) GetProductClassification(ctx context.Context, key string) (*domain.ProductClassification, error) {
	data, err := c.client.Client.Get(ctx, c.classificationKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductClassificationRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, c.classificationKey(key)).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToDomain(&model), nil
}

// SetProductClassification кэширует классификацию на ClassificationTTL.
func (c *CacheRepo) SetProductClassification(ctx context.Context, key string, pc *domain.ProductClassification) error {
	data, err := json.Marshal(c.conv.ToRedisModel(pc))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.classificationKey(key), data, c.cfg.ClassificationTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) classificationKey(key string) string {
	return classificationKeyPrefix + key
}
