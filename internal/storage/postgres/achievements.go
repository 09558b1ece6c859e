package postgres

import (
	"context"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

type achievementRepository struct {
	storage *Storage
}

func (r *achievementRepository) List(ctx context.Context) ([]model.Achievement, error) {
	const query = `SELECT kind, title, subtitle, value, image_name, users_who_finished
                   FROM achievements ORDER BY value, kind`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Achievement
	for rows.Next() {
		var (
			a    model.Achievement
			kind string
		)
		if err := rows.Scan(&kind, &a.Title, &a.Subtitle, &a.Value, &a.ImageName, &a.UsersWhoFinished); err != nil {
			return nil, err
		}
		a.Kind = model.AchievementKind(kind)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
