package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/repository"
	"oracle-veil/internal/infra/metrics"
	red "oracle-veil/internal/infra/redis"
)

var _ repository.AccessTokenRepository = (*tokenRepoCacheDecorator)(nil)

// tokenRepoCacheDecorator caches positive FindByToken results. Token rows are
// written once at creation and never deleted, so a cached hit can only go
// stale in its used flag, which MarkUsed invalidates.
type tokenRepoCacheDecorator struct {
	inner repository.AccessTokenRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewTokenRepoCacheDecorator(inner repository.AccessTokenRepository, cache red.RedisClient, ttl time.Duration) repository.AccessTokenRepository {
	return &tokenRepoCacheDecorator{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

func tokenKey(token string) string {
	return fmt.Sprintf("access_token:%s", token)
}

func (d *tokenRepoCacheDecorator) Create(ctx context.Context, token string) (*model.AccessToken, error) {
	// Fresh random tokens cannot be cached yet; nothing to invalidate.
	return d.inner.Create(ctx, token)
}

func (d *tokenRepoCacheDecorator) FindByToken(ctx context.Context, token string) (*model.AccessToken, error) {
	key := tokenKey(token)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		var t model.AccessToken
		if json.Unmarshal([]byte(val), &t) == nil {
			metrics.IncCacheRequest("access_token", "hit")
			return &t, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Redis being down must not take the gate down with it.
		metrics.IncCacheRequest("access_token", "bypass")
		return d.inner.FindByToken(ctx, token)
	}

	metrics.IncCacheRequest("access_token", "miss")
	t, err := d.inner.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if bytes, err := json.Marshal(t); err == nil {
		_ = d.cache.Set(ctx, key, bytes, d.ttl)
	}
	return t, nil
}

func (d *tokenRepoCacheDecorator) MarkUsed(ctx context.Context, token string) error {
	_ = d.cache.Del(ctx, tokenKey(token))
	return d.inner.MarkUsed(ctx, token)
}

func (d *tokenRepoCacheDecorator) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	// Operator-facing listing stays fresh; no caching.
	return d.inner.ListUnused(ctx)
}
