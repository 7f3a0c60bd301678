package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/socialsync/dashboard-api/internal/transfer"
)

type PlatformService interface {
	List(ctx context.Context, userID int64) ([]*models.ConnectedPlatform, error)
	Connect(ctx context.Context, userID int64, pc *transfer.PlatformConnection) (*models.ConnectedPlatform, error)
	Disconnect(ctx context.Context, userID int64, platform string) (bool, error)
}

type platformService struct {
	pr repository.PlatformRepository
}

func NewPlatformService(pr repository.PlatformRepository) PlatformService {
	return &platformService{pr: pr}
}

func (s *platformService) List(ctx context.Context, userID int64) ([]*models.ConnectedPlatform, error) {
	if userID == 0 {
		err := errors.New("user id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	platforms, err := s.pr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting connected platforms")
	}
	return platforms, nil
}

// Connect upserts the (user, platform) row. No real OAuth exchange
// happens anywhere in this system; when the caller supplies no access
// token a mock one is generated so the row looks like a connected
// account.
func (s *platformService) Connect(ctx context.Context, userID int64, pc *transfer.PlatformConnection) (*models.ConnectedPlatform, error) {
	if pc == nil {
		err := errors.New("platform connection data is nil")
		slog.Info(err.Error())
		return nil, err
	}
	if !models.IsValidPlatform(pc.Platform) {
		err := fmt.Errorf("unknown platform %q", pc.Platform)
		slog.Info(err.Error())
		return nil, err
	}

	connected := true
	if pc.Connected != nil {
		connected = *pc.Connected
	}

	accessToken := pc.AccessToken
	if accessToken == nil {
		token, err := gonanoid.New()
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		mock := "mock-" + token
		accessToken = &mock
	}

	cp := models.ConnectedPlatform{
		UserID:           userID,
		Platform:         pc.Platform,
		Connected:        connected,
		AccessToken:      accessToken,
		RefreshToken:     pc.RefreshToken,
		PlatformUsername: pc.PlatformUsername,
	}

	upserted, err := s.pr.Upsert(ctx, &cp)
	if err != nil {
		return nil, fmt.Errorf("error connecting platform: %w", err)
	}
	return upserted, nil
}

func (s *platformService) Disconnect(ctx context.Context, userID int64, platform string) (bool, error) {
	if !models.IsValidPlatform(platform) {
		err := fmt.Errorf("unknown platform %q", platform)
		slog.Info(err.Error())
		return false, err
	}

	affected, err := s.pr.Disconnect(ctx, userID, platform)
	if err != nil {
		return false, fmt.Errorf("error disconnecting platform")
	}
	return affected, nil
}
