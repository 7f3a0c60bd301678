package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
)

type PlatformRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.ConnectedPlatform, error)
	Upsert(ctx context.Context, cp *models.ConnectedPlatform) (*models.ConnectedPlatform, error)
	Disconnect(ctx context.Context, userID int64, platform string) (bool, error)
}

type platformRepository struct {
	db *sql.DB
}

func NewPlatformRepository(db *sql.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.ConnectedPlatform, error) {
	query := `SELECT id, user_id, platform, connected, access_token, refresh_token, platform_username FROM connected_platforms WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var platforms []*models.ConnectedPlatform
	for rows.Next() {
		var cp models.ConnectedPlatform
		err := rows.Scan(&cp.ID, &cp.UserID, &cp.Platform, &cp.Connected, &cp.AccessToken, &cp.RefreshToken, &cp.PlatformUsername)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		platforms = append(platforms, &cp)
	}
	return platforms, rows.Err()
}

// Upsert inserts a row for (user_id, platform) or overwrites the tokens,
// connected flag and platform username of the existing one. A single
// ON CONFLICT statement keeps the lookup-then-write pair atomic under
// concurrent connect requests.
func (r *platformRepository) Upsert(ctx context.Context, cp *models.ConnectedPlatform) (*models.ConnectedPlatform, error) {
	query := `
		INSERT INTO connected_platforms (user_id, platform, connected, access_token, refresh_token, platform_username)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, platform) DO UPDATE
		SET connected = EXCLUDED.connected,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			platform_username = EXCLUDED.platform_username
		RETURNING id, user_id, platform, connected, access_token, refresh_token, platform_username
	`

	var out models.ConnectedPlatform
	err := r.db.QueryRowContext(ctx, query, cp.UserID, cp.Platform, cp.Connected, cp.AccessToken, cp.RefreshToken, cp.PlatformUsername).
		Scan(&out.ID, &out.UserID, &out.Platform, &out.Connected, &out.AccessToken, &out.RefreshToken, &out.PlatformUsername)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &out, nil
}

// Disconnect flips connected to false. The row and its tokens are kept.
// Returns false when no row exists for the pair, which is a no-op, not
// an error.
func (r *platformRepository) Disconnect(ctx context.Context, userID int64, platform string) (bool, error) {
	query := `UPDATE connected_platforms SET connected = FALSE WHERE user_id = $1 AND platform = $2`
	result, err := r.db.ExecContext(ctx, query, userID, platform)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}
