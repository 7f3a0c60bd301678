package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/socialsync/dashboard-api/internal/transfer"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	ListWithPlatforms(ctx context.Context, userID int64) ([]*transfer.PostWithPlatforms, error)
	ListScheduledWithPlatforms(ctx context.Context, userID int64) ([]*transfer.PostWithPlatforms, error)
	Create(ctx context.Context, userID int64, pc *transfer.PostCreation) (*transfer.PostWithPlatforms, error)
	Remove(ctx context.Context, userID, postID int64) (bool, error)
}

type postService struct {
	db *sql.DB // nil when the in-memory store is active
	pr repository.PostRepository
	pp repository.PostPlatformRepository
}

func NewPostService(db *sql.DB, pr repository.PostRepository, pp repository.PostPlatformRepository) PostService {
	return &postService{
		db: db,
		pr: pr,
		pp: pp,
	}
}

func (s *postService) ListWithPlatforms(ctx context.Context, userID int64) ([]*transfer.PostWithPlatforms, error) {
	posts, err := s.pr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting posts")
	}
	return s.attachPlatforms(ctx, posts)
}

func (s *postService) ListScheduledWithPlatforms(ctx context.Context, userID int64) ([]*transfer.PostWithPlatforms, error) {
	posts, err := s.pr.ListScheduled(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting scheduled posts")
	}
	return s.attachPlatforms(ctx, posts)
}

// attachPlatforms fetches the per-platform rows for each post
// concurrently. The result preserves the order of the post list.
func (s *postService) attachPlatforms(ctx context.Context, posts []*models.Post) ([]*transfer.PostWithPlatforms, error) {
	out := make([]*transfer.PostWithPlatforms, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			platforms, err := s.pp.ListByPostID(gctx, post.ID)
			if err != nil {
				return err
			}
			if platforms == nil {
				platforms = []*models.PostPlatform{}
			}
			out[i] = &transfer.PostWithPlatforms{Post: *post, Platforms: platforms}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error getting post platforms")
	}

	return out, nil
}

// Create inserts the post and one zeroed platform row per targeted
// platform. With the postgres store both happen in one transaction so a
// failed platform insert cannot leave a half-created post behind; the
// in-memory store needs no transaction.
func (s *postService) Create(ctx context.Context, userID int64, pc *transfer.PostCreation) (*transfer.PostWithPlatforms, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Info(err.Error())
		return nil, err
	}
	if pc.Content == "" {
		err := errors.New("content cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if status == models.PostStatusScheduled && pc.ScheduledTime == nil {
		err := errors.New("scheduled posts need a scheduled time")
		slog.Info(err.Error())
		return nil, err
	}

	var tx *sql.Tx
	var err error
	if s.db != nil {
		tx, err = s.db.BeginTx(ctx, &sql.TxOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() {
			if err != nil {
				tx.Rollback()
			}
		}()
	}

	post := models.Post{
		UserID:        userID,
		Content:       pc.Content,
		MediaURL:      pc.MediaURL,
		Status:        status,
		ScheduledTime: pc.ScheduledTime,
	}

	if _, err = s.pr.Create(ctx, tx, &post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	platforms := make([]*models.PostPlatform, 0, len(pc.Platforms))
	for _, platform := range dedupePlatforms(pc.Platforms) {
		pp := models.PostPlatform{
			PostID:   post.ID,
			Platform: platform,
		}
		if _, err = s.pp.Create(ctx, tx, &pp); err != nil {
			return nil, fmt.Errorf("error saving post platform %s: %w", platform, err)
		}
		platforms = append(platforms, &pp)
	}

	if tx != nil {
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return &transfer.PostWithPlatforms{Post: post, Platforms: platforms}, nil
}

// Remove deletes the post and its platform rows, platform rows first.
// Returns false when the post does not exist.
func (s *postService) Remove(ctx context.Context, userID, postID int64) (bool, error) {
	if postID == 0 {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return false, err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("error getting post")
	}
	if post == nil || post.UserID != userID {
		return false, nil
	}

	var tx *sql.Tx
	if s.db != nil {
		tx, err = s.db.BeginTx(ctx, &sql.TxOptions{})
		if err != nil {
			return false, fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() {
			if err != nil {
				tx.Rollback()
			}
		}()
	}

	if err = s.pp.RemoveByPostID(ctx, tx, postID); err != nil {
		return false, fmt.Errorf("error removing post platforms: %w", err)
	}

	existed, err := s.pr.Remove(ctx, tx, postID)
	if err != nil {
		return false, fmt.Errorf("error removing post: %w", err)
	}

	if tx != nil {
		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return existed, nil
}

// dedupePlatforms drops repeated platform names, keeping first
// occurrence order. The store itself accepts duplicate rows; the
// request path does not create them.
func dedupePlatforms(platforms []string) []string {
	seen := make(map[string]struct{}, len(platforms))
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
