package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

// New connects to dsn and prepares the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Habits() repository.HabitRepository {
	return &habitRepository{storage: s}
}

func (s *Storage) Achievements() repository.AchievementRepository {
	return &achievementRepository{storage: s}
}

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) Progress() repository.ProgressTransactor {
	return &progressTransactor{storage: s}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            coins BIGINT NOT NULL DEFAULT 0 CHECK (coins >= 0),
            last_active_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS habits (
            id UUID PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            color TEXT NOT NULL,
            difficulty TEXT NOT NULL,
            streak INTEGER NOT NULL DEFAULT 0 CHECK (streak >= 0),
            is_finished BOOLEAN NOT NULL DEFAULT FALSE,
            last_date_finished TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS achievements (
            kind TEXT PRIMARY KEY,
            title TEXT UNIQUE NOT NULL,
            subtitle TEXT NOT NULL,
            value BIGINT NOT NULL,
            image_name TEXT NOT NULL,
            users_who_finished BIGINT[] NOT NULL DEFAULT '{}'
        )`,
	`CREATE TABLE IF NOT EXISTS rewards (
            id UUID PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL CHECK (price >= 0),
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_rewards_user ON rewards(user_id, created_at DESC)`,
}

const seedAchievement = `INSERT INTO achievements (kind, title, subtitle, value, image_name)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (kind) DO UPDATE
        SET title = EXCLUDED.title, subtitle = EXCLUDED.subtitle,
            value = EXCLUDED.value, image_name = EXCLUDED.image_name`

func (s *Storage) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	for _, def := range model.AchievementCatalog() {
		if _, err := s.pool.Exec(ctx, seedAchievement, string(def.Kind), def.Title, def.Subtitle, def.Value, def.ImageName); err != nil {
			return fmt.Errorf("seed achievement %s: %w", def.Kind, err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.WarnContext(ctx, "rollback failed", slog.String("error", rbErr.Error()))
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// mapError translates PostgreSQL failures into domain errors. Other errors
// are returned unchanged.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domainErrors.ErrAlreadyExists
	case codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%w: %s", domainErrors.ErrConflict, pgErr.Message)
	}
	return err
}
