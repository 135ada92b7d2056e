//go:build !integration

package postgres

import (
	"context"
	"time"

	"oracle-veil/internal/domain/model"
	red "oracle-veil/internal/infra/redis"
)

// --- Mocks for cache decorator tests ---

// mockInnerTokenRepo mocks the database repository that the decorator wraps.
type mockInnerTokenRepo struct {
	CreateFunc      func(ctx context.Context, token string) (*model.AccessToken, error)
	FindByTokenFunc func(ctx context.Context, token string) (*model.AccessToken, error)
	MarkUsedFunc    func(ctx context.Context, token string) error
	ListUnusedFunc  func(ctx context.Context) ([]*model.AccessToken, error)
}

func (m *mockInnerTokenRepo) Create(ctx context.Context, token string) (*model.AccessToken, error) {
	return m.CreateFunc(ctx, token)
}
func (m *mockInnerTokenRepo) FindByToken(ctx context.Context, token string) (*model.AccessToken, error) {
	return m.FindByTokenFunc(ctx, token)
}
func (m *mockInnerTokenRepo) MarkUsed(ctx context.Context, token string) error {
	return m.MarkUsedFunc(ctx, token)
}
func (m *mockInnerTokenRepo) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	return m.ListUnusedFunc(ctx)
}

// mockRedisClient mocks our Redis client wrapper.
type mockRedisClient struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelFunc    func(ctx context.Context, keys ...string) error
	PingFunc   func(ctx context.Context) error
	ExpireFunc func(ctx context.Context, key string, expiration time.Duration) error
	CloseFunc  func() error
}

var _ red.RedisClient = (*mockRedisClient)(nil)

func (m *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	return m.GetFunc(ctx, key)
}
func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.SetFunc(ctx, key, value, expiration)
}
func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	return m.DelFunc(ctx, keys...)
}
func (m *mockRedisClient) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
func (m *mockRedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if m.ExpireFunc != nil {
		return m.ExpireFunc(ctx, key, expiration)
	}
	return nil
}
func (m *mockRedisClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
