package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

type progressTransactor struct {
	storage *Storage
}

// WithinProgress runs fn in a transaction. Row locks taken by LockUser are
// held until fn returns.
func (p *progressTransactor) WithinProgress(ctx context.Context, fn func(ctx context.Context, store repository.ProgressStore) error) error {
	err := p.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return fn(ctx, &progressStore{tx: tx})
	})
	return mapError(err)
}

type progressStore struct {
	tx pgx.Tx
}

var _ repository.ProgressStore = (*progressStore)(nil)

func (s *progressStore) LockUser(ctx context.Context, userID int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1 FOR UPDATE`
	return scanUser(s.tx.QueryRow(ctx, query, userID))
}

func (s *progressStore) SaveUser(ctx context.Context, user *model.User) error {
	const query = `UPDATE users SET coins=$1, last_active_date=$2 WHERE id=$3`
	tag, err := s.tx.Exec(ctx, query, user.Coins, user.LastActiveDate, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (s *progressStore) ListOwnerHabits(ctx context.Context, owner model.Owner) ([]model.Habit, error) {
	return listHabits(ctx, s.tx, owner)
}

func (s *progressStore) SaveOwnerHabits(ctx context.Context, owner model.Owner, habits []model.Habit) error {
	const query = `UPDATE habits SET streak=$1, is_finished=$2, updated_at=$3 WHERE id=$4 AND user_id=$5`
	for _, h := range habits {
		if _, err := s.tx.Exec(ctx, query, h.Streak, h.IsFinished, h.UpdatedAt, h.ID, owner.UserID()); err != nil {
			return err
		}
	}
	return nil
}

func (s *progressStore) GetHabit(ctx context.Context, id uuid.UUID) (*model.Habit, error) {
	const query = `SELECT ` + habitColumns + ` FROM habits WHERE id=$1`
	return scanHabit(s.tx.QueryRow(ctx, query, id))
}

func (s *progressStore) MarkHabitFinished(ctx context.Context, owner model.Owner, habit *model.Habit) error {
	const query = `UPDATE habits
                   SET is_finished=TRUE, streak=$1, last_date_finished=$2, updated_at=$3
                   WHERE id=$4 AND user_id=$5 AND is_finished=FALSE`
	tag, err := s.tx.Exec(ctx, query, habit.Streak, habit.LastDateFinished, habit.UpdatedAt, habit.ID, owner.UserID())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrAlreadyCompleted
	}
	return nil
}

func (s *progressStore) AddAchievementHolder(ctx context.Context, kind model.AchievementKind, userID int64) (int64, error) {
	const grant = `UPDATE achievements
                   SET users_who_finished = array_append(users_who_finished, $2)
                   WHERE kind=$1 AND NOT ($2 = ANY(users_who_finished))
                   RETURNING value`
	var value int64
	err := s.tx.QueryRow(ctx, grant, string(kind), userID).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	var existing int64
	if err := s.tx.QueryRow(ctx, `SELECT value FROM achievements WHERE kind=$1`, string(kind)).Scan(&existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrUnknownAchievement
		}
		return 0, err
	}
	return 0, nil
}
