package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
)

type AnalyticsRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.Analytics, error)
	Create(ctx context.Context, a *models.Analytics) (int64, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Analytics, error) {
	query := `SELECT id, user_id, platform, date, engagement_rate, follower_count, followers_gained, impressions, profile_views FROM analytics WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.Analytics
	for rows.Next() {
		var a models.Analytics
		err := rows.Scan(&a.ID, &a.UserID, &a.Platform, &a.Date, &a.EngagementRate, &a.FollowerCount, &a.FollowersGained, &a.Impressions, &a.ProfileViews)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		snapshots = append(snapshots, &a)
	}
	return snapshots, rows.Err()
}

func (r *analyticsRepository) Create(ctx context.Context, a *models.Analytics) (int64, error) {
	query := `
		INSERT INTO analytics (user_id, platform, date, engagement_rate, follower_count, followers_gained, impressions, profile_views)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, a.UserID, a.Platform, a.Date, a.EngagementRate, a.FollowerCount, a.FollowersGained, a.Impressions, a.ProfileViews).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	a.ID = id
	return id, nil
}
