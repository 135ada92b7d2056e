package usecase

import (
	"context"
	"errors"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/repository"
	"oracle-veil/internal/infra/metrics"
)

// MaxTokenBatch bounds one minting request. The admin UI clamps to this; the
// server rejects anything above it outright.
const MaxTokenBatch = 50

// Compile-time check
var _ TokenUseCase = (*tokenUC)(nil)

type TokenUseCase interface {
	// CreateTokens mints count fresh tokens and returns them in creation
	// order. count outside [1, MaxTokenBatch] is ErrInvalidArgument.
	CreateTokens(ctx context.Context, count int) ([]string, error)
	// Redeem reports whether the token was ever issued. The current policy is
	// multi-use: a redeemed token stays valid and no state is mutated.
	Redeem(ctx context.Context, token string) (*model.AccessToken, error)
	// ListUnused returns all tokens whose used flag is still false.
	ListUnused(ctx context.Context) ([]*model.AccessToken, error)
	// MarkUsed is the dormant single-use path. Redemption does not call it;
	// it is kept pending a product decision on invalidation.
	MarkUsed(ctx context.Context, token string) error
}

type tokenUC struct {
	repo repository.AccessTokenRepository
}

func NewTokenUseCase(repo repository.AccessTokenRepository) *tokenUC {
	return &tokenUC{repo: repo}
}

func (uc *tokenUC) CreateTokens(ctx context.Context, count int) ([]string, error) {
	if count < 1 || count > MaxTokenBatch {
		return nil, domain.ErrInvalidArgument
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		code, err := generateAccessToken()
		if err != nil {
			return nil, err
		}
		if _, err := uc.repo.Create(ctx, code); err != nil {
			// Partial batches are surfaced, not silently truncated.
			return nil, err
		}
		out = append(out, code)
	}
	metrics.AddTokensIssued(len(out))
	return out, nil
}

func (uc *tokenUC) Redeem(ctx context.Context, token string) (*model.AccessToken, error) {
	if token == "" {
		return nil, domain.ErrInvalidArgument
	}
	t, err := uc.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IncRedemption("invalid")
		} else {
			metrics.IncRedemption("error")
		}
		return nil, err
	}
	// Deliberately no MarkUsed here: issued tokens act as standing invites.
	metrics.IncRedemption("valid")
	return t, nil
}

func (uc *tokenUC) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	return uc.repo.ListUnused(ctx)
}

func (uc *tokenUC) MarkUsed(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidArgument
	}
	return uc.repo.MarkUsed(ctx, token)
}
