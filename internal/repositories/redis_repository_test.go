package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestOpenRedis(t *testing.T) {
	rdb, err := OpenRedis(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, rdb, "empty url disables redis")

	_, err = OpenRedis(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)

	_, err = OpenRedis(context.Background(), config.RedisConfig{URL: "redis://127.0.0.1:1/0", DialTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestRedisRepository_PropagatesErrors(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewRedisRepository(rdb)

	assert.Error(t, repo.Blacklist(context.Background(), "abc", time.Minute))
	blacklisted, err := repo.IsBlacklisted(context.Background(), "abc")
	assert.Error(t, err)
	assert.False(t, blacklisted)
}
