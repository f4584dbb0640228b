package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/redis"
)

// Store persists one session's cart lines between requests. A session that
// was never saved loads as an empty cart.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps cart snapshots as JSON blobs keyed by session id.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading cart snapshot")
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// A corrupt snapshot should not brick the session; start fresh.
		return nil, nil
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	if len(lines) == 0 {
		return s.Delete(ctx, sessionID)
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encoding cart snapshot")
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), payload, s.ttl); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "saving cart snapshot")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(sessionID)); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "deleting cart snapshot")
	}
	return nil
}
