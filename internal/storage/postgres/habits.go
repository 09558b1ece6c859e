package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
)

type habitRepository struct {
	storage *Storage
}

const habitColumns = `id, user_id, name, color, difficulty, streak, is_finished, last_date_finished, created_at, updated_at`

func scanHabit(row pgx.Row) (*model.Habit, error) {
	var (
		h          model.Habit
		difficulty string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Color, &difficulty, &h.Streak, &h.IsFinished, &h.LastDateFinished, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	h.Difficulty = model.Difficulty(difficulty)
	return &h, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listHabits(ctx context.Context, q querier, owner model.Owner) ([]model.Habit, error) {
	const query = `SELECT ` + habitColumns + ` FROM habits WHERE user_id=$1 ORDER BY created_at DESC, id`
	rows, err := q.Query(ctx, query, owner.UserID())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create locks the owner row so concurrent creations observe each other's
// habits when the limit is checked.
func (r *habitRepository) Create(ctx context.Context, owner model.Owner, draft model.HabitDraft, limit int) (*model.Habit, error) {
	habit := model.Habit{
		ID:         uuid.New(),
		UserID:     owner.UserID(),
		Name:       draft.Name,
		Color:      draft.Color,
		Difficulty: draft.Difficulty,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id=$1 FOR UPDATE`, owner.UserID()).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM habits WHERE user_id=$1`, owner.UserID()).Scan(&count); err != nil {
			return err
		}
		if count >= limit {
			return domainErrors.ErrHabitLimitReached
		}

		const insert = `INSERT INTO habits (id, user_id, name, color, difficulty)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING created_at, updated_at`
		return tx.QueryRow(ctx, insert, habit.ID, habit.UserID, habit.Name, habit.Color, string(habit.Difficulty)).
			Scan(&habit.CreatedAt, &habit.UpdatedAt)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &habit, nil
}

func (r *habitRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Habit, error) {
	const query = `SELECT ` + habitColumns + ` FROM habits WHERE id=$1`
	return scanHabit(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *habitRepository) ListByOwner(ctx context.Context, owner model.Owner) ([]model.Habit, error) {
	return listHabits(ctx, r.storage.pool, owner)
}

func (r *habitRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Habit, error) {
	const query = `UPDATE habits SET name=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + habitColumns
	return scanHabit(r.storage.pool.QueryRow(ctx, query, name, id))
}

func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM habits WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
