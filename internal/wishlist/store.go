package wishlist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/redis"
)

// Store persists one session's wishlist between requests.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]cart.Product, error)
	Save(ctx context.Context, sessionID string, entries []cart.Product) error
}

// RedisStore keeps wishlist snapshots as JSON blobs keyed by session id.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]cart.Product, error) {
	raw, err := s.client.Get(ctx, s.client.WishlistKey(sessionID))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading wishlist snapshot")
	}

	var entries []cart.Product
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, entries []cart.Product) error {
	key := s.client.WishlistKey(sessionID)
	if len(entries) == 0 {
		if err := s.client.Del(ctx, key); err != nil {
			return errors.Wrap(errors.CodeDependency, err, "deleting wishlist snapshot")
		}
		return nil
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encoding wishlist snapshot")
	}
	if err := s.client.Set(ctx, key, payload, s.ttl); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "saving wishlist snapshot")
	}
	return nil
}
