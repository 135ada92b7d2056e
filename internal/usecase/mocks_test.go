package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/adapter"
	"oracle-veil/internal/domain/ports/repository"
)

// --- in-memory access token repository ---

type memTokenRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]*model.AccessToken
}

var _ repository.AccessTokenRepository = (*memTokenRepo)(nil)

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{rows: make(map[string]*model.AccessToken)}
}

func (r *memTokenRepo) Create(ctx context.Context, token string) (*model.AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[token]; ok {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	t := &model.AccessToken{ID: r.nextID, Token: token, Used: false, CreatedAt: time.Now().UTC()}
	r.rows[token] = t
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) FindByToken(ctx context.Context, token string) (*model.AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) MarkUsed(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[token]
	if !ok {
		return domain.ErrNotFound
	}
	t.Used = true
	return nil
}

func (r *memTokenRepo) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.AccessToken
	for _, t := range r.rows {
		if !t.Used {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// --- in-memory user repository ---

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]*model.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[username]; ok {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	u := &model.User{ID: r.nextID, Username: username, Password: passwordHash}
	r.rows[username] = u
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// --- scripted AI adapter ---

type mockAIAdapter struct {
	mu         sync.Mutex
	calls      int
	lastSystem string
	lastPrompt string

	reply string
	usage adapter.Usage
	err   error
}

var _ adapter.AIServiceAdapter = (*mockAIAdapter)(nil)

func (m *mockAIAdapter) Provider() string { return "mock" }

func (m *mockAIAdapter) Generate(ctx context.Context, model, system, prompt string) (string, adapter.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	return m.reply, m.usage, m.err
}

func (m *mockAIAdapter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
