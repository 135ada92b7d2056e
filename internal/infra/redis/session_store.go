package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"oracle-veil/internal/domain/ports/repository"
)

var _ repository.AdminSessionRepository = (*SessionStore)(nil)

// SessionStore keeps admin session records in Redis. A record is the session:
// logout deletes the key, and expiry bounds how long a cookie stays good even
// if the holder never logs out.
type SessionStore struct {
	client RedisClient
	ttl    time.Duration
}

func NewSessionStore(client RedisClient, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) key(id string) string {
	return fmt.Sprintf("admin_session:%s", id)
}

func (s *SessionStore) Create(ctx context.Context, id string) error {
	return s.client.Set(ctx, s.key(id), time.Now().UTC().Format(time.RFC3339), s.ttl)
}

func (s *SessionStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.client.Get(ctx, s.key(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id))
}
