package readstore

import (
	"context"
	"errors"

	"cleansched/internal/infra"
	"cleansched/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) commands.UserReads {
	return &userReadStore{pool: pool}
}

func (s *userReadStore) EmailByID(ctx context.Context, id uuid.UUID) (string, error) {
	const q = `SELECT email FROM users WHERE id = $1`

	var email string
	if err := s.pool.QueryRow(ctx, q, id).Scan(&email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find user", err)
	}
	return email, nil
}
