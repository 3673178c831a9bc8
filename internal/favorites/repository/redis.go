package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements favorites persistence on Redis. The whole set
// is stored as one JSON array of product identifiers per key.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a new Redis favorites repository
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Load reads the persisted favorite set. A missing key is an empty set.
func (r *RedisRepository) Load(ctx context.Context, key string) ([]string, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return ids, nil
}

// Save writes the favorite set, replacing the previous value.
func (r *RedisRepository) Save(ctx context.Context, key string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}
