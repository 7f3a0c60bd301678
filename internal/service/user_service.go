package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/repository"
)

type UserService interface {
	Info(ctx context.Context, userID int64) (*models.User, error)
}

type userService struct {
	ur repository.UserRepository
}

func NewUserService(ur repository.UserRepository) UserService {
	return &userService{ur: ur}
}

// Info returns the user or nil when no such user exists.
func (s *userService) Info(ctx context.Context, userID int64) (*models.User, error) {
	if userID == 0 {
		err := errors.New("user id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	user, err := s.ur.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("error getting user info")
	}
	return user, nil
}
