package service

import (
	"context"
	"sort"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/utils"
)

type adminAnalyticsService struct {
	orgRepo         repository.OrganizationRepository
	membershipRepo  repository.MembershipRepository
	complianceRepo  repository.ComplianceRepository
	hoursRepo       repository.HoursRepository
	opportunityRepo repository.OpportunityRepository
	activityWindow  time.Duration
	topLimit        int32
}

func NewAdminAnalyticsService(
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	complianceRepo repository.ComplianceRepository,
	hoursRepo repository.HoursRepository,
	opportunityRepo repository.OpportunityRepository,
	activityWindowDays, defaultTopLimit int,
) AdminAnalyticsService {
	return &adminAnalyticsService{
		orgRepo:         orgRepo,
		membershipRepo:  membershipRepo,
		complianceRepo:  complianceRepo,
		hoursRepo:       hoursRepo,
		opportunityRepo: opportunityRepo,
		activityWindow:  time.Duration(activityWindowDays) * 24 * time.Hour,
		topLimit:        int32(defaultTopLimit),
	}
}

func (s *adminAnalyticsService) GetPlatformOverview(ctx context.Context, preset, fromDate, toDate string) (*domain.PlatformOverview, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	totalOrgs, err := s.orgRepo.CountTotal(ctx)
	if err != nil {
		return nil, repoErr("platform overview: org count", err)
	}
	activeOrgs, err := s.orgRepo.CountActive(ctx)
	if err != nil {
		return nil, repoErr("platform overview: active org count", err)
	}

	totalVolunteers, activeVolunteers, err := s.membershipRepo.CountPlatform(ctx)
	if err != nil {
		return nil, repoErr("platform overview: volunteer counts", err)
	}

	hours, err := s.hoursRepo.SumInRange(ctx, 0, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("platform overview: hours sum", err)
	}

	totalOpps, _, err := s.opportunityRepo.CountByOrg(ctx, 0, time.Now())
	if err != nil {
		return nil, repoErr("platform overview: opportunity count", err)
	}

	compliance, err := s.platformCompliance(ctx, activeVolunteers)
	if err != nil {
		return nil, err
	}

	return &domain.PlatformOverview{
		TotalOrganizations:  totalOrgs,
		ActiveOrganizations: activeOrgs,
		TotalVolunteers:     totalVolunteers,
		ActiveVolunteers:    activeVolunteers,
		TotalHours:          hours.TotalHours,
		TotalOpportunities:  totalOpps,
		ComplianceRate:      compliance.OverallRate,
	}, nil
}

func (s *adminAnalyticsService) GetComplianceRates(ctx context.Context) (*domain.ComplianceStatus, error) {
	_, activeVolunteers, err := s.membershipRepo.CountPlatform(ctx)
	if err != nil {
		return nil, repoErr("compliance rates: volunteer counts", err)
	}
	return s.platformCompliance(ctx, activeVolunteers)
}

// platformCompliance short-circuits to a fully compliant platform when
// there are no active volunteers or no mandatory requirements anywhere,
// skipping the grouped join entirely.
func (s *adminAnalyticsService) platformCompliance(ctx context.Context, activeVolunteers int32) (*domain.ComplianceStatus, error) {
	if activeVolunteers == 0 {
		return &domain.ComplianceStatus{OverallRate: 100}, nil
	}

	mandatory, err := s.complianceRepo.CountMandatoryRequirements(ctx)
	if err != nil {
		return nil, repoErr("compliance rates: requirement count", err)
	}
	if mandatory == 0 {
		return &domain.ComplianceStatus{OverallRate: 100}, nil
	}

	rows, err := s.complianceRepo.ComplianceByDocType(ctx, 0)
	if err != nil {
		return nil, repoErr("compliance rates: by doc type", err)
	}
	return buildComplianceStatus(rows), nil
}

func (s *adminAnalyticsService) GetTopOrganizations(ctx context.Context, limit int32) ([]domain.TopOrganization, error) {
	if limit <= 0 {
		limit = s.topLimit
	}
	orgs, err := s.orgRepo.TopOrganizations(ctx, limit)
	if err != nil {
		return nil, repoErr("top organizations: aggregates", err)
	}

	sort.SliceStable(orgs, func(i, j int) bool {
		return orgs[i].TotalHours > orgs[j].TotalHours
	})
	for i := range orgs {
		orgs[i].Rank = int32(i + 1)
	}
	return orgs, nil
}

func (s *adminAnalyticsService) GetUserGrowthTrend(ctx context.Context, preset, fromDate, toDate string) ([]domain.CountTrendPoint, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	timestamps, err := s.membershipRepo.UsersCreatedBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("user growth trend: creation dates", err)
	}
	return utils.BucketCounts(rng, utils.GranularityDay, timestamps), nil
}

func (s *adminAnalyticsService) GetOrganizationGrowthTrend(ctx context.Context, preset, fromDate, toDate string) ([]domain.CountTrendPoint, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	timestamps, err := s.orgRepo.CreatedBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, repoErr("org growth trend: creation dates", err)
	}
	return utils.BucketCounts(rng, utils.GranularityDay, timestamps), nil
}

func (s *adminAnalyticsService) GetEngagementMetrics(ctx context.Context, preset, fromDate, toDate string) (*domain.EngagementMetrics, error) {
	rng, err := resolveRange(preset, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return computeEngagement(ctx, s.hoursRepo, s.opportunityRepo, 0, rng, s.activityWindow)
}
