// Package redisstore keeps user documents as Redis string values.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/domain"
)

// KeyPrefix namespaces every key written by the store.
const KeyPrefix = "petcal"

// Documents is a Redis-backed database.Documents backend.
type Documents struct {
	client redis.UniversalClient
}

// New wraps an existing client.
func New(client redis.UniversalClient) *Documents {
	return &Documents{client: client}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int) (*Documents, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return New(client), nil
}

// Key returns the Redis key of a user document.
func Key(userID string, kind database.Kind) string {
	return fmt.Sprintf("%s:%s:%s", KeyPrefix, userID, kind)
}

func (d *Documents) Get(ctx context.Context, userID string, kind database.Kind) ([]byte, error) {
	body, err := d.client.Get(ctx, Key(userID, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", Key(userID, kind), err)
	}
	return body, nil
}

func (d *Documents) Put(ctx context.Context, userID string, kind database.Kind, body []byte) error {
	if err := d.client.Set(ctx, Key(userID, kind), body, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", Key(userID, kind), err)
	}
	return nil
}

func (d *Documents) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *Documents) Close() error {
	return d.client.Close()
}
