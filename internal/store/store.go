// Package store is the per-user keyed store behind the dashboard
// collections (appointments, alerts, chat history, session snapshot).
// Values are JSON blobs under logical keys such as "appointments:<userID>".
//
// Writers follow a read-modify-write pattern (read full collection, append,
// write full collection). That is not atomic across processes. It is
// acceptable here because each user's collections are written by exactly one
// session at a time; this is a documented non-guarantee, not an oversight.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes one JSON value per key.
type Store interface {
	// Read unmarshals the value at key into dest. A missing or corrupt key
	// leaves dest untouched, so callers get whatever default they passed in.
	Read(ctx context.Context, key string, dest any) error
	Write(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Logical key names, matching the collections the dashboard works with.
const (
	KeyAppointments = "appointments"
	KeyAlerts       = "alerts"
	KeyChatMessages = "chat-messages"
	KeyCurrentUser  = "current-user"
	KeyLanguage     = "language-preference"
)

// UserKey scopes a logical key to one user.
func UserKey(name, userID string) string {
	return fmt.Sprintf("%s:%s", name, userID)
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Read(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// Corrupt value: fall back to the caller-supplied default.
		return nil
	}
	return nil
}

func (s *redisStore) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
