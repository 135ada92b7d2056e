package web

import (
	"context"
	"sync"

	"oracle-veil/internal/domain/model"
)

type mockTokenUC struct {
	createFn    func(ctx context.Context, count int) ([]string, error)
	redeemFn    func(ctx context.Context, token string) (*model.AccessToken, error)
	listFn      func(ctx context.Context) ([]*model.AccessToken, error)
	markUsedFn  func(ctx context.Context, token string) error
	redeemCalls int
}

func (m *mockTokenUC) CreateTokens(ctx context.Context, count int) ([]string, error) {
	return m.createFn(ctx, count)
}

func (m *mockTokenUC) Redeem(ctx context.Context, token string) (*model.AccessToken, error) {
	m.redeemCalls++
	return m.redeemFn(ctx, token)
}

func (m *mockTokenUC) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	return m.listFn(ctx)
}

func (m *mockTokenUC) MarkUsed(ctx context.Context, token string) error {
	if m.markUsedFn != nil {
		return m.markUsedFn(ctx, token)
	}
	return nil
}

type mockReadingUC struct {
	generateFn func(ctx context.Context, cards []string) (string, error)
	calls      int
}

func (m *mockReadingUC) Generate(ctx context.Context, cards []string) (string, error) {
	m.calls++
	return m.generateFn(ctx, cards)
}

// memSessionRepo is a map-backed stand-in for the Redis session store.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]bool
	failNext error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]bool)}
}

func (m *memSessionRepo) Create(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.sessions[id] = true
	return nil
}

func (m *memSessionRepo) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id], nil
}

func (m *memSessionRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memSessionRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
