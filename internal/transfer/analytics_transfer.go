package transfer

import "github.com/socialsync/dashboard-api/internal/models"

// AnalyticsOverview is the aggregated response for GET /api/analytics.
// Summary figures are partly derived from stored snapshots and partly
// fixed demo values, matching the dashboard's mocked charts.
type AnalyticsOverview struct {
	EngagementRate    string                         `json:"engagementRate"`
	FollowerGrowth    int                            `json:"followerGrowth"`
	GrowthTrend       string                         `json:"growthTrend"`
	PlatformBreakdown map[string]int                 `json:"platformBreakdown"`
	PlatformData      map[string][]*models.Analytics `json:"platformData"`
}
