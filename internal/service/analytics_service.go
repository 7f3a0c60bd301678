package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/socialsync/dashboard-api/internal/transfer"
)

// growthTrend and platformBreakdown are fixed demo figures, the same
// ones the dashboard charts were built around.
var platformBreakdown = map[string]int{
	models.PlatformTwitter:   30,
	models.PlatformInstagram: 25,
	models.PlatformFacebook:  20,
	models.PlatformBluesky:   5,
}

const growthTrend = "+12%"

type AnalyticsService interface {
	Overview(ctx context.Context, userID int64) (*transfer.AnalyticsOverview, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{ar: ar}
}

// Overview groups the stored snapshots by platform and derives the
// summary figures: follower growth is the sum of followers gained,
// the engagement rate the average across snapshots.
func (s *analyticsService) Overview(ctx context.Context, userID int64) (*transfer.AnalyticsOverview, error) {
	snapshots, err := s.ar.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting analytics")
	}

	platformData := make(map[string][]*models.Analytics)
	followerGrowth := 0
	rateSum := 0.0
	rateCount := 0

	for _, snap := range snapshots {
		platformData[snap.Platform] = append(platformData[snap.Platform], snap)
		followerGrowth += snap.FollowersGained

		if rate, ok := parseRate(snap.EngagementRate); ok {
			rateSum += rate
			rateCount++
		}
	}

	engagementRate := "0.0%"
	if rateCount > 0 {
		engagementRate = fmt.Sprintf("%.1f%%", rateSum/float64(rateCount))
	}

	return &transfer.AnalyticsOverview{
		EngagementRate:    engagementRate,
		FollowerGrowth:    followerGrowth,
		GrowthTrend:       growthTrend,
		PlatformBreakdown: platformBreakdown,
		PlatformData:      platformData,
	}, nil
}

func parseRate(rate string) (float64, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(rate), "%")
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
