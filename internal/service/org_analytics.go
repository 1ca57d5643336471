package service

import (
	"context"
	"sort"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/utils"
)

type organizationAnalyticsService struct {
	membershipRepo  repository.MembershipRepository
	complianceRepo  repository.ComplianceRepository
	hoursRepo       repository.HoursRepository
	opportunityRepo repository.OpportunityRepository
	activityWindow  time.Duration
	fixedMonths     int
	topLimit        int32
}

func NewOrganizationAnalyticsService(
	membershipRepo repository.MembershipRepository,
	complianceRepo repository.ComplianceRepository,
	hoursRepo repository.HoursRepository,
	opportunityRepo repository.OpportunityRepository,
	activityWindowDays, fixedTrendMonths, defaultTopLimit int,
) OrganizationAnalyticsService {
	return &organizationAnalyticsService{
		membershipRepo:  membershipRepo,
		complianceRepo:  complianceRepo,
		hoursRepo:       hoursRepo,
		opportunityRepo: opportunityRepo,
		activityWindow:  time.Duration(activityWindowDays) * 24 * time.Hour,
		fixedMonths:     fixedTrendMonths,
		topLimit:        int32(defaultTopLimit),
	}
}

func (s *organizationAnalyticsService) GetOverviewStats(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.OverviewStats, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	total, active, err := s.membershipRepo.CountByOrg(ctx, orgID)
	if err != nil {
		return nil, repoErr("overview: membership counts", err)
	}

	hours, err := s.hoursRepo.SumInRange(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("overview: hours sum", err)
	}

	totalOpps, completedOpps, err := s.opportunityRepo.CountByOrg(ctx, orgID, time.Now())
	if err != nil {
		return nil, repoErr("overview: opportunity counts", err)
	}

	applications, err := s.opportunityRepo.ApplicationsByStatus(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("overview: applications by status", err)
	}

	attendances, err := s.opportunityRepo.AttendancesByMethod(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("overview: attendances by method", err)
	}

	teams, err := s.opportunityRepo.CountTeams(ctx, orgID)
	if err != nil {
		return nil, repoErr("overview: team count", err)
	}

	return &domain.OverviewStats{
		TotalVolunteers:        total,
		ActiveVolunteers:       active,
		TotalHours:             hours.TotalHours,
		TotalOpportunities:     totalOpps,
		CompletedOpportunities: completedOpps,
		ApplicationsByStatus:   applications,
		AttendancesByMethod:    attendances,
		TotalTeams:             teams,
	}, nil
}

func (s *organizationAnalyticsService) GetHoursTrend(ctx context.Context, orgID int32, preset, fromDate, toDate, groupBy string) ([]domain.HoursTrendPoint, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.hoursRepo.ListInRange(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("hours trend: list hours", err)
	}
	return utils.BucketHours(rng, utils.ParseGranularity(groupBy), rows), nil
}

func (s *organizationAnalyticsService) GetFixedWindowHoursTrend(ctx context.Context, orgID int32, months int) ([]domain.HoursTrendPoint, error) {
	if months <= 0 {
		months = s.fixedMonths
	}
	now := time.Now()
	rng := utils.DateRange{
		From: utils.StartOfMonth(now).AddDate(0, -(months - 1), 0),
		To:   now,
	}

	rows, err := s.hoursRepo.ListInRange(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("fixed hours trend: list hours", err)
	}
	return utils.BucketHours(rng, utils.GranularityMonth, rows), nil
}

func (s *organizationAnalyticsService) GetVolunteerParticipation(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.VolunteerParticipation, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	total, _, err := s.membershipRepo.CountByOrg(ctx, orgID)
	if err != nil {
		return nil, repoErr("participation: membership counts", err)
	}

	current, err := s.hoursRepo.SumInRange(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("participation: current window", err)
	}

	// Compare against the immediately preceding window of equal length.
	width := rng.To.Sub(rng.From)
	previous, err := s.hoursRepo.SumInRange(ctx, orgID, rng.From.Add(-width), rng.From)
	if err != nil {
		return nil, repoErr("participation: previous window", err)
	}

	return &domain.VolunteerParticipation{
		Total:      total,
		Active:     current.VolunteerCount,
		PrevActive: previous.VolunteerCount,
		TrendPct:   utils.Change(float64(current.VolunteerCount), float64(previous.VolunteerCount)),
	}, nil
}

func (s *organizationAnalyticsService) GetEventPerformance(ctx context.Context, orgID int32, preset, fromDate, toDate string, limit int32) ([]domain.EventPerformance, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.opportunityRepo.EventPerformance(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("event performance: aggregates", err)
	}

	events := make([]domain.EventPerformance, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.EventPerformance{
			OpportunityID: row.OpportunityID,
			Title:         row.Title,
			Capacity:      row.Capacity,
			Accepted:      row.Accepted,
			Attended:      row.Attended,
			FillRate:      utils.Rate(float64(row.Accepted), float64(row.Capacity)),
			ShowUpRate:    utils.Rate(float64(row.Attended), float64(row.Accepted)),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].FillRate > events[j].FillRate
	})
	if limit > 0 && int32(len(events)) > limit {
		events = events[:limit]
	}
	for i := range events {
		events[i].Rank = int32(i + 1)
	}
	return events, nil
}

func (s *organizationAnalyticsService) GetComplianceStatus(ctx context.Context, orgID int32) (*domain.ComplianceStatus, error) {
	rows, err := s.complianceRepo.ComplianceByDocType(ctx, orgID)
	if err != nil {
		return nil, repoErr("compliance status: by doc type", err)
	}
	return buildComplianceStatus(rows), nil
}

func (s *organizationAnalyticsService) GetEngagementMetrics(ctx context.Context, orgID int32, preset, fromDate, toDate string) (*domain.EngagementMetrics, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return computeEngagement(ctx, s.hoursRepo, s.opportunityRepo, orgID, rng, s.activityWindow)
}

func (s *organizationAnalyticsService) GetTopVolunteers(ctx context.Context, orgID int32, preset, fromDate, toDate string, limit int32) ([]domain.TopVolunteer, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.topLimit
	}
	volunteers, err := s.hoursRepo.TopVolunteers(ctx, orgID, rng.From, rng.To, limit)
	if err != nil {
		return nil, repoErr("top volunteers: aggregates", err)
	}

	sort.SliceStable(volunteers, func(i, j int) bool {
		return volunteers[i].TotalHours > volunteers[j].TotalHours
	})
	for i := range volunteers {
		volunteers[i].Rank = int32(i + 1)
	}
	return volunteers, nil
}

// buildComplianceStatus applies the rate policy per doc type and pools the
// overall rate from summed counts. Averaging the per-type rates would weight
// rare and common doc types equally, which is wrong.
func buildComplianceStatus(rows []domain.DocTypeComplianceRow) *domain.ComplianceStatus {
	status := &domain.ComplianceStatus{
		ByDocType: make([]domain.DocTypeCompliance, 0, len(rows)),
	}
	var sumTotal, sumValid int32
	for _, row := range rows {
		status.ByDocType = append(status.ByDocType, domain.DocTypeCompliance{
			DocType: row.DocType,
			Total:   row.Total,
			Valid:   row.Valid,
			Rate:    utils.Rate(float64(row.Valid), float64(row.Total)),
		})
		sumTotal += row.Total
		sumValid += row.Valid
	}
	status.OverallRate = utils.Rate(float64(sumValid), float64(sumTotal))
	return status
}

// computeEngagement is shared between the organization and platform
// services; an orgID of 0 means platform-wide.
func computeEngagement(ctx context.Context, hoursRepo repository.HoursRepository, opportunityRepo repository.OpportunityRepository, orgID int32, rng utils.DateRange, activityWindow time.Duration) (*domain.EngagementMetrics, error) {
	hours, err := hoursRepo.SumInRange(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("engagement: hours sum", err)
	}

	accepted, applicants, err := opportunityRepo.AcceptedApplicationCounts(ctx, orgID, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("engagement: application counts", err)
	}

	firstFrom := utils.StartOfMonth(rng.From)
	firstTo := firstFrom.AddDate(0, 1, 0)
	lastFrom := utils.StartOfMonth(rng.To)
	lastTo := lastFrom.AddDate(0, 1, 0)

	userFirst, userBoth, err := hoursRepo.UserRetentionCounts(ctx, orgID, firstFrom, firstTo, lastFrom, lastTo)
	if err != nil {
		return nil, repoErr("engagement: user retention", err)
	}

	orgFirst, orgBoth, err := hoursRepo.OrgRetentionCounts(ctx, firstFrom, firstTo, lastFrom, lastTo)
	if err != nil {
		return nil, repoErr("engagement: org retention", err)
	}

	active, err := hoursRepo.CountActiveSince(ctx, orgID, time.Now().Add(-activityWindow))
	if err != nil {
		return nil, repoErr("engagement: active count", err)
	}

	return &domain.EngagementMetrics{
		AverageHoursPerUser:         utils.Average(hours.TotalHours, int64(hours.VolunteerCount)),
		AverageOpportunitiesPerUser: utils.Average(float64(accepted), int64(applicants)),
		UserRetentionRate:           utils.Rate(float64(userBoth), float64(userFirst)),
		OrganizationRetentionRate:   utils.Rate(float64(orgBoth), float64(orgFirst)),
		MonthlyActiveUsers:          active,
	}, nil
}
