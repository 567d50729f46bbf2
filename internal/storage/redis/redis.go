// Package redis implements a Redis-backed storage backend for deployments
// where the device state should survive the device itself.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/JuanoBQ/eCommerce-Template-sub001/pkg/errors"
)

const keyPrefix = "shopstate:"

// Backend implements storage.Backend using Redis.
type Backend struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed storage backend. A zero ttl means keys never
// expire.
func New(client *redis.Client, ttl time.Duration) *Backend {
	return &Backend{
		client: client,
		ttl:    ttl,
	}
}

// Load retrieves the blob stored under key.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("redis get state: %w", err)
	}
	return data, nil
}

// Save overwrites the blob stored under key, refreshing the TTL.
func (b *Backend) Save(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, keyPrefix+key, data, b.ttl).Err(); err != nil {
		return fmt.Errorf("redis set state: %w", err)
	}
	return nil
}

// Delete removes the blob stored under key.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del state: %w", err)
	}
	return nil
}
