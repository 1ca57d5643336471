package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/utils"
)

type snapshotService struct {
	snapshotRepo repository.SnapshotRepository
	adminSvc     AdminAnalyticsService
}

func NewSnapshotService(snapshotRepo repository.SnapshotRepository, adminSvc AdminAnalyticsService) SnapshotService {
	return &snapshotService{
		snapshotRepo: snapshotRepo,
		adminSvc:     adminSvc,
	}
}

// CaptureDailyMetrics archives the platform headline metrics as one
// snapshot row each, all stamped with the same date and capture-run ID.
// Snapshots are append-only; re-running a capture adds rows rather than
// overwriting earlier ones.
func (s *snapshotService) CaptureDailyMetrics(ctx context.Context) error {
	runID := uuid.NewString()
	now := time.Now()
	metricDate := utils.StartOfDay(now)

	overview, err := s.adminSvc.GetPlatformOverview(ctx, "", "", "")
	if err != nil {
		return err
	}

	metrics := []struct {
		metricType string
		value      float64
	}{
		{domain.MetricTypeTotalOrgs, float64(overview.TotalOrganizations)},
		{domain.MetricTypeTotalVolunteers, float64(overview.TotalVolunteers)},
		{domain.MetricTypeActiveVolunteers, float64(overview.ActiveVolunteers)},
		{domain.MetricTypeTotalHours, overview.TotalHours},
		{domain.MetricTypeComplianceRate, overview.ComplianceRate},
	}

	for _, m := range metrics {
		snapshot := &domain.MetricSnapshot{
			MetricType:  m.metricType,
			MetricDate:  metricDate,
			MetricValue: m.value,
			Metadata: map[string]string{
				"capture_run": runID,
				"source":      "scheduled",
			},
		}
		if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
			return repoErr("snapshot capture: "+m.metricType, err)
		}
	}

	logger.Info("Captured daily metric snapshots", "run_id", runID, "metrics", len(metrics))
	return nil
}
