package postgres

import (
	"context"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

type rewardRepository struct {
	storage *Storage
}

func (r *rewardRepository) Create(ctx context.Context, reward *model.Reward) error {
	const query = `INSERT INTO rewards (id, user_id, title, description, price, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, reward.ID, reward.UserID, reward.Title, reward.Description, reward.Price, reward.ImageURL).
		Scan(&reward.CreatedAt)
	return mapError(err)
}

func (r *rewardRepository) ListByUser(ctx context.Context, userID int64) ([]model.Reward, error) {
	const query = `SELECT id, user_id, title, description, price, image_url, created_at
                   FROM rewards WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Reward
	for rows.Next() {
		var rw model.Reward
		if err := rows.Scan(&rw.ID, &rw.UserID, &rw.Title, &rw.Description, &rw.Price, &rw.ImageURL, &rw.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
