package repository

import (
	"context"

	"oracle-veil/internal/domain/model"
)

// AccessTokenRepository is the port for the access token store.
type AccessTokenRepository interface {
	// Create inserts a new unused token row and returns it with the
	// store-assigned id and timestamp. Duplicate token values yield
	// domain.ErrAlreadyExists.
	Create(ctx context.Context, token string) (*model.AccessToken, error)
	// FindByToken looks a row up by exact value, used or not.
	// Missing rows yield domain.ErrNotFound.
	FindByToken(ctx context.Context, token string) (*model.AccessToken, error)
	// MarkUsed flips the used flag. Kept for the single-use policy that the
	// redemption path no longer applies.
	MarkUsed(ctx context.Context, token string) error
	// ListUnused returns all rows with used=false, newest first.
	ListUnused(ctx context.Context) ([]*model.AccessToken, error)
}
