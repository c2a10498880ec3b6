package places

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "places:autocomplete:"

// Storage caches raw autocomplete payloads keyed by normalized query.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Get(ctx context.Context, query string) (string, error) {
	return s.redis.Get(ctx, key(query)).Result()
}

func (s *Storage) Set(ctx context.Context, query, payload string, ttl time.Duration) error {
	return s.redis.Set(ctx, key(query), payload, ttl).Err()
}

func key(query string) string {
	return fmt.Sprintf("%s%s", keyPrefix, query)
}
