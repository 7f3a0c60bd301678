package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
)

type PostPlatformRepository interface {
	ListByPostID(ctx context.Context, postID int64) ([]*models.PostPlatform, error)
	Create(ctx context.Context, tx *sql.Tx, pp *models.PostPlatform) (int64, error)
	RemoveByPostID(ctx context.Context, tx *sql.Tx, postID int64) error
}

type postPlatformRepository struct {
	db *sql.DB
}

func NewPostPlatformRepository(db *sql.DB) PostPlatformRepository {
	return &postPlatformRepository{db: db}
}

func (r *postPlatformRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostPlatform, error) {
	query := `SELECT id, post_id, platform, platform_post_id, engagement, likes, comments, shares FROM post_platforms WHERE post_id = $1`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var platforms []*models.PostPlatform
	for rows.Next() {
		var pp models.PostPlatform
		err := rows.Scan(&pp.ID, &pp.PostID, &pp.Platform, &pp.PlatformPostID, &pp.Engagement, &pp.Likes, &pp.Comments, &pp.Shares)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		platforms = append(platforms, &pp)
	}
	return platforms, rows.Err()
}

func (r *postPlatformRepository) Create(ctx context.Context, tx *sql.Tx, pp *models.PostPlatform) (int64, error) {
	query := `
		INSERT INTO post_platforms (post_id, platform, platform_post_id, engagement, likes, comments, shares)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, pp.PostID, pp.Platform, pp.PlatformPostID, pp.Engagement, pp.Likes, pp.Comments, pp.Shares).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, pp.PostID, pp.Platform, pp.PlatformPostID, pp.Engagement, pp.Likes, pp.Comments, pp.Shares).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	pp.ID = id
	return id, nil
}

func (r *postPlatformRepository) RemoveByPostID(ctx context.Context, tx *sql.Tx, postID int64) error {
	query := `DELETE FROM post_platforms WHERE post_id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, postID)
	} else {
		_, err = r.db.ExecContext(ctx, query, postID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
