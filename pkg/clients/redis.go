package clients

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// RedisClient — обертка над go-redis, используемая кэшем классификаций.
type RedisClient struct {
	Client *r.Client
	addr   string
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	return &RedisClient{
		Client: r.NewClient(&r.Options{
			Addr:         cfg.Addr,
			Username:     cfg.User,
			Password:     cfg.Password,
			DB:           cfg.DB,
			MaxRetries:   cfg.MaxRetries,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		}),
		addr: cfg.Addr,
	}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("redis %s unreachable: %w", c.addr, err))
	}

	return nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
