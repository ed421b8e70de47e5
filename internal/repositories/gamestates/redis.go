package gamestates

import (
	"context"
	"errors"

	"github.com/KirkDiggler/dnd-dm-state/internal/domain/gamestate"
	stateerr "github.com/KirkDiggler/dnd-dm-state/internal/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the state document is stored under
const DefaultRedisKey = "gamestate"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Key    string
}

type redisRepository struct {
	client redis.UniversalClient
	key    string
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisRepository{
		client: cfg.Client,
		key:    key,
	}
}

// Load reads the state document
func (r *redisRepository) Load(ctx context.Context) (*gamestate.GameState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gamestate.NewDefault(), nil
		}
		return nil, stateerr.Internalf(err, "failed to get game state from redis key %s", r.key)
	}

	return decodeOrDefault("redis key "+r.key, data)
}

// Save overwrites the state document with no expiry
func (r *redisRepository) Save(ctx context.Context, state *gamestate.GameState) error {
	data, err := gamestate.Encode(state)
	if err != nil {
		return stateerr.WrapWithCode(err, stateerr.CodeInvalidArgument, "failed to encode game state")
	}

	if err := r.client.Set(ctx, r.key, string(data), 0).Err(); err != nil {
		return stateerr.Internalf(err, "failed to set game state in redis key %s", r.key)
	}

	return nil
}

// Exists reports whether the key is present
func (r *redisRepository) Exists(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, r.key).Result()
	if err != nil {
		return false, stateerr.Internalf(err, "failed to check redis key %s", r.key)
	}
	return n > 0, nil
}
