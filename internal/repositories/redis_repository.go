package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/config"
)

const blacklistPrefix = "storefront:blacklist:"

// RedisRepository holds the logout blacklist of session credentials.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

// OpenRedis connects using cfg.URL and pings once. An empty URL returns (nil, nil).
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return rdb, nil
}

func (r *RedisRepository) Blacklist(ctx context.Context, key string, ttl time.Duration) error {
	return r.rdb.Set(ctx, blacklistPrefix+key, "1", ttl).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, key string) (bool, error) {
	exists, err := r.rdb.Exists(ctx, blacklistPrefix+key).Result()
	return exists == 1, err
}
