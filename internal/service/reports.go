package service

import (
	"context"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/utils"
)

type reportsService struct {
	membershipRepo repository.MembershipRepository
	snapshotRepo   repository.SnapshotRepository
	activityWindow time.Duration
}

func NewReportsService(
	membershipRepo repository.MembershipRepository,
	snapshotRepo repository.SnapshotRepository,
	activityWindowDays int,
) ReportsService {
	return &reportsService{
		membershipRepo: membershipRepo,
		snapshotRepo:   snapshotRepo,
		activityWindow: time.Duration(activityWindowDays) * 24 * time.Hour,
	}
}

// GetRetentionCohorts groups memberships by join month, newest first, and
// reports how many cohort members are currently active. "Currently" means
// approved hours within the trailing activity window ending now, not a
// window anchored at the cohort month.
func (s *reportsService) GetRetentionCohorts(ctx context.Context, orgID, limit int32) ([]domain.RetentionCohort, error) {
	if limit <= 0 {
		limit = 12
	}

	rows, err := s.membershipRepo.RetentionCohorts(ctx, orgID, limit, time.Now().Add(-s.activityWindow))
	if err != nil {
		return nil, repoErr("retention cohorts: grouped query", err)
	}

	cohorts := make([]domain.RetentionCohort, 0, len(rows))
	for _, row := range rows {
		cohorts = append(cohorts, domain.RetentionCohort{
			Month:         row.Month.Format("2006-01-02"),
			CohortSize:    row.CohortSize,
			StillActive:   row.StillActive,
			RetentionRate: utils.Rate(float64(row.StillActive), float64(row.CohortSize)),
		})
	}
	return cohorts, nil
}

func (s *reportsService) GetMetricHistory(ctx context.Context, metricType, preset, fromDate, toDate string) ([]domain.SnapshotPoint, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	points, err := s.snapshotRepo.ListByTypeAndRange(ctx, metricType, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("metric history: snapshot list", err)
	}
	return points, nil
}
