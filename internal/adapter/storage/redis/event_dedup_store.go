package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventDedupStore implements ports.EventDeduplicator using Redis SET NX.
type EventDedupStore struct {
	client goredis.Cmdable
	prefix string
}

// NewEventDedupStore creates a new Redis-backed event de-duplicator.
func NewEventDedupStore(client goredis.Cmdable) *EventDedupStore {
	return &EventDedupStore{
		client: client,
		prefix: "pwn:",
	}
}

// Claim atomically records key for ttl.
// Returns true if the key was new, false if it is still held.
func (s *EventDedupStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			// Key already exists
			return false, nil
		}
		return false, fmt.Errorf("redis event claim: %w", err)
	}
	return result == "OK", nil
}
