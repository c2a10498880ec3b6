package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/clubhub-app/clubhub/internal/adapters/database/redis/places"
)

type Client struct {
	Places *places.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	placesStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := placesStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping places storage: %w", err)
	}

	return &Client{
		Places: places.NewStorage(placesStorage),
	}, nil
}
