package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/repository"
)

var _ repository.UserRepository = (*PostgresUserRepo)(nil)

type PostgresUserRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{pool: pool}
}

func (r *PostgresUserRepo) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const sql = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id, username, password;
`
	row := r.pool.QueryRow(ctx, sql, username, passwordHash)
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("Create user: %w", err)
	}
	return &u, nil
}

func (r *PostgresUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const sql = `
SELECT id, username, password
  FROM users
 WHERE id = $1;
`
	return r.scanOne(r.pool.QueryRow(ctx, sql, id))
}

func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const sql = `
SELECT id, username, password
  FROM users
 WHERE username = $1;
`
	return r.scanOne(r.pool.QueryRow(ctx, sql, username))
}

func (r *PostgresUserRepo) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
