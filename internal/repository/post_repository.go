package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error)
	ListScheduled(ctx context.Context, userID int64) ([]*models.Post, error)
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error)
	Update(ctx context.Context, id int64, upd *models.PostUpdate) (*models.Post, error)
	Remove(ctx context.Context, tx *sql.Tx, id int64) (bool, error)
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = "id, user_id, content, media_url, status, scheduled_time, created_at"

func scanPost(row interface{ Scan(...interface{}) error }) (*models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Content, &post.MediaURL, &post.Status, &post.ScheduledTime, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

// ListScheduled returns scheduled posts soonest first. Rows with a null
// scheduled time sort last, tie-broken by creation time.
func (r *postRepository) ListScheduled(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 AND status = 'scheduled' ORDER BY scheduled_time ASC NULLS LAST, created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *postRepository) list(ctx context.Context, query string, userID int64) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Create assigns id and created_at server-side; any caller-supplied
// creation timestamp is ignored. Both are written back onto post.
func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, content, media_url, status, scheduled_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.UserID, post.Content, post.MediaURL, post.Status, post.ScheduledTime).Scan(&post.ID, &post.CreatedAt)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.UserID, post.Content, post.MediaURL, post.Status, post.ScheduledTime).Scan(&post.ID, &post.CreatedAt)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return post.ID, nil
}

// Update merges the supplied fields onto the existing row. Nil fields
// keep their stored value.
func (r *postRepository) Update(ctx context.Context, id int64, upd *models.PostUpdate) (*models.Post, error) {
	query := `
		UPDATE posts
		SET content = COALESCE($2, content),
			media_url = COALESCE($3, media_url),
			status = COALESCE($4, status),
			scheduled_time = COALESCE($5, scheduled_time)
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, upd.Content, upd.MediaURL, upd.Status, upd.ScheduledTime))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Remove(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	query := `DELETE FROM posts WHERE id = $1`

	var result sql.Result
	var err error
	if tx != nil {
		result, err = tx.ExecContext(ctx, query, id)
	} else {
		result, err = r.db.ExecContext(ctx, query, id)
	}
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
