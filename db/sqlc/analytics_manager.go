package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementMatchesStartedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesStarted(ctx, hostIpNet)
}

func (a *AnalyticsManager) IncrementWinsCount(ctx context.Context, hostIpNet pqtype.Inet, humanWon bool) error {
	if humanWon {
		return a.queries.AnalyticsIncrementHumanWins(ctx, hostIpNet)
	}
	return a.queries.AnalyticsIncrementBotWins(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetMatchesStartedCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetMatchesStarted(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetMatchAnalytics(ctx context.Context, hostIpNet pqtype.Inet) (MatchAnalytic, error) {
	return a.queries.AnalyticsGetMatchAnalytics(ctx, hostIpNet)
}
