package usecase

import (
	"context"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/repository"
	"oracle-veil/internal/infra/security"
)

// UserUseCase manages operator accounts. The users table is scaffolding: no
// HTTP route consumes it, only the seed command does.
type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	VerifyPassword(ctx context.Context, username, password string) (bool, error)
}

var _ UserUseCase = (*userUC)(nil)

type userUC struct {
	repo repository.UserRepository
}

func NewUserUseCase(repo repository.UserRepository) *userUC {
	return &userUC{repo: repo}
}

func (uc *userUC) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidArgument
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, username, hash)
}

func (uc *userUC) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return uc.repo.FindByUsername(ctx, username)
}

func (uc *userUC) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	u, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return security.VerifyPassword(u.Password, password)
}
