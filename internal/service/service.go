package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/utils"
)

// Date parameters are a preset name or explicit ISO-8601 from/to strings;
// see utils.ResolveDateRange for the accepted presets and the trailing
// 12-month default. Every operation either returns a complete result or an
// error, never a partially filled struct.

type OrganizationAnalyticsService interface {
	GetOverviewStats(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.OverviewStats, error)
	GetHoursTrend(ctx context.Context, orgID int32, preset, fromDate, toDate, groupBy string) ([]domain.HoursTrendPoint, error)
	// GetFixedWindowHoursTrend covers a fixed count of trailing calendar
	// months ending at the current one, ignoring any caller range. Kept as a
	// separate operation from GetHoursTrend on purpose.
	GetFixedWindowHoursTrend(ctx context.Context, orgID int32, months int) ([]domain.HoursTrendPoint, error)
	GetVolunteerParticipation(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.VolunteerParticipation, error)
	GetEventPerformance(ctx context.Context, orgID int32, preset, fromDate, toDate string, limit int32) ([]domain.EventPerformance, error)
	GetComplianceStatus(ctx context.Context, orgID int32) (*domain.ComplianceStatus, error)
	GetEngagementMetrics(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.EngagementMetrics, error)
	GetTopVolunteers(ctx context.Context, orgID int32, preset, fromDate, toDate string, limit int32) ([]domain.TopVolunteer, error)
}

type AdminAnalyticsService interface {
	GetPlatformOverview(ctx context.Context, preset, fromDate, toDate string) (*domain.PlatformOverview, error)
	GetComplianceRates(ctx context.Context) (*domain.ComplianceStatus, error)
	GetTopOrganizations(ctx context.Context, limit int32) ([]domain.TopOrganization, error)
	GetUserGrowthTrend(ctx context.Context, preset, fromDate, toDate string) ([]domain.CountTrendPoint, error)
	GetOrganizationGrowthTrend(ctx context.Context, preset, fromDate, toDate string) ([]domain.CountTrendPoint, error)
	GetEngagementMetrics(ctx context.Context, preset, fromDate, toDate string) (*domain.EngagementMetrics, error)
}

type ReportsService interface {
	GetRetentionCohorts(ctx context.Context, orgID, limit int32) ([]domain.RetentionCohort, error)
	GetMetricHistory(ctx context.Context, metricType, preset, fromDate, toDate string) ([]domain.SnapshotPoint, error)
}

type SnapshotService interface {
	// CaptureDailyMetrics computes the platform headline metrics and appends
	// them to the snapshot store, tagged with a capture-run ID.
	CaptureDailyMetrics(ctx context.Context) error
}

// resolveRange anchors preset resolution at the current instant.
func resolveRange(preset, fromDate, toDate string) (utils.DateRange, error) {
	return utils.ResolveDateRange(preset, fromDate, toDate, time.Now())
}

// repoErr tags a storage failure with the failing aggregate so callers can
// tell it apart from client errors via errors.Is(err, domain.ErrRepository).
func repoErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrRepository, err))
}
