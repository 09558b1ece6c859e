package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, username, password_hash, coins, last_active_date, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Coins, &u.LastActiveDate, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	u := model.User{Username: username, PasswordHash: passwordHash}
	if err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}
