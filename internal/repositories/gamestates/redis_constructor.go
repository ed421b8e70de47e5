package gamestates

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed game state repository under the default key
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
		Key:    DefaultRedisKey,
	})
}
