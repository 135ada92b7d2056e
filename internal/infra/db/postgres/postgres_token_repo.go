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

// Ensure interface compliance
var _ repository.AccessTokenRepository = (*PostgresTokenRepo)(nil)

type PostgresTokenRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepo(pool *pgxpool.Pool) *PostgresTokenRepo {
	return &PostgresTokenRepo{pool: pool}
}

func (r *PostgresTokenRepo) Create(ctx context.Context, token string) (*model.AccessToken, error) {
	const sql = `
INSERT INTO access_tokens (token, used)
VALUES ($1, FALSE)
RETURNING id, token, used, created_at;
`
	row := r.pool.QueryRow(ctx, sql, token)
	var t model.AccessToken
	if err := row.Scan(&t.ID, &t.Token, &t.Used, &t.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("Create token: %w", err)
	}
	return &t, nil
}

func (r *PostgresTokenRepo) FindByToken(ctx context.Context, token string) (*model.AccessToken, error) {
	const sql = `
SELECT id, token, used, created_at
  FROM access_tokens
 WHERE token = $1;
`
	row := r.pool.QueryRow(ctx, sql, token)
	var t model.AccessToken
	if err := row.Scan(&t.ID, &t.Token, &t.Used, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("FindByToken: %w", err)
	}
	return &t, nil
}

func (r *PostgresTokenRepo) MarkUsed(ctx context.Context, token string) error {
	const sql = `
UPDATE access_tokens
   SET used = TRUE
 WHERE token = $1;
`
	tag, err := r.pool.Exec(ctx, sql, token)
	if err != nil {
		return fmt.Errorf("MarkUsed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresTokenRepo) ListUnused(ctx context.Context) ([]*model.AccessToken, error) {
	const sql = `
SELECT id, token, used, created_at
  FROM access_tokens
 WHERE used = FALSE
 ORDER BY created_at DESC;
`
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("ListUnused: %w", err)
	}
	defer rows.Close()
	var out []*model.AccessToken
	for rows.Next() {
		var t model.AccessToken
		if err := rows.Scan(&t.ID, &t.Token, &t.Used, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
