package repository

import (
	"context"

	"oracle-veil/internal/domain/model"
)

// UserRepository is the port for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
