package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

func newOrgService(membership *MockMembershipRepo, compliance *MockComplianceRepo, hours *MockHoursRepo, opportunity *MockOpportunityRepo) service.OrganizationAnalyticsService {
	return service.NewOrganizationAnalyticsService(membership, compliance, hours, opportunity, 30, 6, 10)
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOrganizationAnalyticsService_GetComplianceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Single doc type with one of two volunteers covered", func(t *testing.T) {
		complianceRepo := new(MockComplianceRepo)
		svc := newOrgService(new(MockMembershipRepo), complianceRepo, new(MockHoursRepo), new(MockOpportunityRepo))

		complianceRepo.On("ComplianceByDocType", ctx, int32(1)).Return([]domain.DocTypeComplianceRow{
			{DocType: "WWCC", Total: 2, Valid: 1},
		}, nil)

		status, err := svc.GetComplianceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, status.ByDocType, 1)
		assert.Equal(t, "WWCC", status.ByDocType[0].DocType)
		assert.Equal(t, int32(2), status.ByDocType[0].Total)
		assert.Equal(t, int32(1), status.ByDocType[0].Valid)
		assert.Equal(t, 50.0, status.ByDocType[0].Rate)
		assert.Equal(t, 50.0, status.OverallRate)
		complianceRepo.AssertExpectations(t)
	})

	t.Run("Overall rate is pooled, not averaged", func(t *testing.T) {
		complianceRepo := new(MockComplianceRepo)
		svc := newOrgService(new(MockMembershipRepo), complianceRepo, new(MockHoursRepo), new(MockOpportunityRepo))

		complianceRepo.On("ComplianceByDocType", ctx, int32(1)).Return([]domain.DocTypeComplianceRow{
			{DocType: "FIRST_AID", Total: 100, Valid: 90},
			{DocType: "WWCC", Total: 2, Valid: 1},
		}, nil)

		status, err := svc.GetComplianceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 90.0, status.ByDocType[0].Rate)
		assert.Equal(t, 50.0, status.ByDocType[1].Rate)
		// pooled: 91/102, not (90+50)/2
		assert.Equal(t, 89.2, status.OverallRate)
	})

	t.Run("No requirements means fully compliant", func(t *testing.T) {
		complianceRepo := new(MockComplianceRepo)
		svc := newOrgService(new(MockMembershipRepo), complianceRepo, new(MockHoursRepo), new(MockOpportunityRepo))

		complianceRepo.On("ComplianceByDocType", ctx, int32(1)).Return([]domain.DocTypeComplianceRow{}, nil)

		status, err := svc.GetComplianceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, status.ByDocType)
		assert.Equal(t, 100.0, status.OverallRate)
	})

	t.Run("Repository failure surfaces tagged, with no partial result", func(t *testing.T) {
		complianceRepo := new(MockComplianceRepo)
		svc := newOrgService(new(MockMembershipRepo), complianceRepo, new(MockHoursRepo), new(MockOpportunityRepo))

		complianceRepo.On("ComplianceByDocType", ctx, int32(1)).Return(nil, errors.New("connection reset"))

		status, err := svc.GetComplianceStatus(ctx, 1)
		assert.Nil(t, status)
		assert.True(t, errors.Is(err, domain.ErrRepository))
	})
}

func TestOrganizationAnalyticsService_GetHoursTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero-filled daily series", func(t *testing.T) {
		hoursRepo := new(MockHoursRepo)
		svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

		from := utcDate(2024, 3, 1)
		to := utcDate(2024, 3, 4)
		hoursRepo.On("ListInRange", ctx, int32(1), from, to).Return([]domain.HourRow{
			{UserID: 1, Date: utcDate(2024, 3, 1), Hours: 2},
			{UserID: 2, Date: utcDate(2024, 3, 3), Hours: 5},
		}, nil)

		points, err := svc.GetHoursTrend(ctx, 1, "", "2024-03-01", "2024-03-04", "day")
		assert.NoError(t, err)
		assert.Len(t, points, 4)
		assert.Equal(t, 2.0, points[0].TotalHours)
		assert.Equal(t, 0.0, points[1].TotalHours)
		assert.Equal(t, 5.0, points[2].TotalHours)
		assert.Equal(t, int32(0), points[3].LogCount)
	})

	t.Run("Invalid dates rejected before touching the repository", func(t *testing.T) {
		hoursRepo := new(MockHoursRepo)
		svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

		_, err := svc.GetHoursTrend(ctx, 1, "", "not-a-date", "2024-03-04", "day")
		assert.True(t, errors.Is(err, domain.ErrInvalidDateRange))
		hoursRepo.AssertNotCalled(t, "ListInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inverted range yields an empty series, not an error", func(t *testing.T) {
		hoursRepo := new(MockHoursRepo)
		svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

		hoursRepo.On("ListInRange", ctx, int32(1), utcDate(2024, 3, 4), utcDate(2024, 3, 1)).
			Return([]domain.HourRow{}, nil)

		points, err := svc.GetHoursTrend(ctx, 1, "", "2024-03-04", "2024-03-01", "day")
		assert.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestOrganizationAnalyticsService_GetFixedWindowHoursTrend(t *testing.T) {
	ctx := context.Background()
	hoursRepo := new(MockHoursRepo)
	svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

	hoursRepo.On("ListInRange", ctx, int32(3), mock.Anything, mock.Anything).Return([]domain.HourRow{}, nil)

	// months <= 0 falls back to the configured default of 6 calendar months
	points, err := svc.GetFixedWindowHoursTrend(ctx, 3, 0)
	assert.NoError(t, err)
	assert.Len(t, points, 6)
	for _, p := range points {
		assert.Equal(t, 0.0, p.TotalHours)
	}
}

func TestOrganizationAnalyticsService_GetVolunteerParticipation(t *testing.T) {
	ctx := context.Background()
	membershipRepo := new(MockMembershipRepo)
	hoursRepo := new(MockHoursRepo)
	svc := newOrgService(membershipRepo, new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

	from := utcDate(2024, 2, 1)
	to := utcDate(2024, 3, 2) // 30-day window

	membershipRepo.On("CountByOrg", ctx, int32(1)).Return(int32(100), int32(80), nil)
	hoursRepo.On("SumInRange", ctx, int32(1), from, to).
		Return(&domain.HoursAggregate{VolunteerCount: 30}, nil)
	hoursRepo.On("SumInRange", ctx, int32(1), from.Add(-30*24*time.Hour), from).
		Return(&domain.HoursAggregate{VolunteerCount: 20}, nil)

	participation, err := svc.GetVolunteerParticipation(ctx, 1, "", "2024-02-01", "2024-03-02")
	assert.NoError(t, err)
	assert.Equal(t, int32(100), participation.Total)
	assert.Equal(t, int32(30), participation.Active)
	assert.Equal(t, int32(20), participation.PrevActive)
	assert.Equal(t, 50.0, participation.TrendPct)
}

func TestOrganizationAnalyticsService_GetEventPerformance(t *testing.T) {
	ctx := context.Background()
	opportunityRepo := new(MockOpportunityRepo)
	svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), new(MockHoursRepo), opportunityRepo)

	from := utcDate(2024, 1, 1)
	to := utcDate(2024, 6, 30)
	opportunityRepo.On("EventPerformance", ctx, int32(1), from, to).Return([]domain.EventPerformanceRow{
		{OpportunityID: 10, Title: "Beach Cleanup", Capacity: 10, Accepted: 8, Attended: 6},
		{OpportunityID: 11, Title: "Tree Planting", Capacity: 0, Accepted: 0, Attended: 0},
		{OpportunityID: 12, Title: "Soup Kitchen", Capacity: 10, Accepted: 10, Attended: 5},
	}, nil)

	events, err := svc.GetEventPerformance(ctx, 1, "", "2024-01-01", "2024-06-30", 2)
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	// zero capacity means nothing required, so fill rate is 100; ties keep
	// input order (Tree Planting before Soup Kitchen)
	assert.Equal(t, int32(11), events[0].OpportunityID)
	assert.Equal(t, 100.0, events[0].FillRate)
	assert.Equal(t, 100.0, events[0].ShowUpRate)
	assert.Equal(t, int32(1), events[0].Rank)

	assert.Equal(t, int32(12), events[1].OpportunityID)
	assert.Equal(t, 100.0, events[1].FillRate)
	assert.Equal(t, 50.0, events[1].ShowUpRate)
	assert.Equal(t, int32(2), events[1].Rank)
}

func TestOrganizationAnalyticsService_GetEngagementMetrics(t *testing.T) {
	ctx := context.Background()
	hoursRepo := new(MockHoursRepo)
	opportunityRepo := new(MockOpportunityRepo)
	svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, opportunityRepo)

	from := utcDate(2024, 1, 15)
	to := utcDate(2024, 6, 10)
	firstFrom := utcDate(2024, 1, 1)
	firstTo := utcDate(2024, 2, 1)
	lastFrom := utcDate(2024, 6, 1)
	lastTo := utcDate(2024, 7, 1)

	hoursRepo.On("SumInRange", ctx, int32(1), from, to).
		Return(&domain.HoursAggregate{TotalHours: 100, VolunteerCount: 8}, nil)
	opportunityRepo.On("AcceptedApplicationCounts", ctx, int32(1), from, to).
		Return(int32(30), int32(10), nil)
	hoursRepo.On("UserRetentionCounts", ctx, int32(1), firstFrom, firstTo, lastFrom, lastTo).
		Return(int32(20), int32(6), nil)
	hoursRepo.On("OrgRetentionCounts", ctx, firstFrom, firstTo, lastFrom, lastTo).
		Return(int32(0), int32(0), nil)
	hoursRepo.On("CountActiveSince", ctx, int32(1), mock.Anything).Return(int32(42), nil)

	metrics, err := svc.GetEngagementMetrics(ctx, 1, "", "2024-01-15", "2024-06-10")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, metrics.AverageHoursPerUser)
	assert.Equal(t, 3.0, metrics.AverageOpportunitiesPerUser)
	assert.Equal(t, 30.0, metrics.UserRetentionRate)
	// rates keep the 100-on-empty policy even inside engagement metrics
	assert.Equal(t, 100.0, metrics.OrganizationRetentionRate)
	assert.Equal(t, int32(42), metrics.MonthlyActiveUsers)
}

func TestOrganizationAnalyticsService_GetEngagementMetricsZeroActivity(t *testing.T) {
	ctx := context.Background()
	hoursRepo := new(MockHoursRepo)
	opportunityRepo := new(MockOpportunityRepo)
	svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, opportunityRepo)

	hoursRepo.On("SumInRange", ctx, int32(1), mock.Anything, mock.Anything).
		Return(&domain.HoursAggregate{}, nil)
	opportunityRepo.On("AcceptedApplicationCounts", ctx, int32(1), mock.Anything, mock.Anything).
		Return(int32(0), int32(0), nil)
	hoursRepo.On("UserRetentionCounts", ctx, int32(1), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int32(0), int32(0), nil)
	hoursRepo.On("OrgRetentionCounts", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int32(0), int32(0), nil)
	hoursRepo.On("CountActiveSince", ctx, int32(1), mock.Anything).Return(int32(0), nil)

	metrics, err := svc.GetEngagementMetrics(ctx, 1, "", "2024-01-01", "2024-02-01")
	assert.NoError(t, err)
	// averages go to 0 on empty denominators, never to 100
	assert.Equal(t, 0.0, metrics.AverageHoursPerUser)
	assert.Equal(t, 0.0, metrics.AverageOpportunitiesPerUser)
	// rates go to 100
	assert.Equal(t, 100.0, metrics.UserRetentionRate)
}

func TestOrganizationAnalyticsService_GetTopVolunteers(t *testing.T) {
	ctx := context.Background()
	hoursRepo := new(MockHoursRepo)
	svc := newOrgService(new(MockMembershipRepo), new(MockComplianceRepo), hoursRepo, new(MockOpportunityRepo))

	from := utcDate(2024, 1, 1)
	to := utcDate(2024, 12, 31)
	hoursRepo.On("TopVolunteers", ctx, int32(1), from, to, int32(3)).Return([]domain.TopVolunteer{
		{UserID: 5, Name: "Ada", TotalHours: 52},
		{UserID: 6, Name: "Grace", TotalHours: 52},
		{UserID: 7, Name: "Alan", TotalHours: 12},
	}, nil)

	volunteers, err := svc.GetTopVolunteers(ctx, 1, "", "2024-01-01", "2024-12-31", 3)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), volunteers[0].Rank)
	assert.Equal(t, int32(2), volunteers[1].Rank)
	assert.Equal(t, int32(3), volunteers[2].Rank)
	// stable on ties
	assert.Equal(t, "Ada", volunteers[0].Name)
	assert.Equal(t, "Grace", volunteers[1].Name)
}

func TestOrganizationAnalyticsService_GetOverviewStats(t *testing.T) {
	ctx := context.Background()
	membershipRepo := new(MockMembershipRepo)
	hoursRepo := new(MockHoursRepo)
	opportunityRepo := new(MockOpportunityRepo)
	svc := newOrgService(membershipRepo, new(MockComplianceRepo), hoursRepo, opportunityRepo)

	from := utcDate(2024, 1, 1)
	to := utcDate(2024, 6, 30)

	membershipRepo.On("CountByOrg", ctx, int32(9)).Return(int32(50), int32(41), nil)
	hoursRepo.On("SumInRange", ctx, int32(9), from, to).
		Return(&domain.HoursAggregate{TotalHours: 812.5, VolunteerCount: 37, LogCount: 300}, nil)
	opportunityRepo.On("CountByOrg", ctx, int32(9), mock.Anything).Return(int32(24), int32(18), nil)
	opportunityRepo.On("ApplicationsByStatus", ctx, int32(9), from, to).
		Return(map[string]int32{"ACCEPTED": 60, "PENDING": 9}, nil)
	opportunityRepo.On("AttendancesByMethod", ctx, int32(9), from, to).
		Return(map[string]int32{"QR": 40, "MANUAL": 12}, nil)
	opportunityRepo.On("CountTeams", ctx, int32(9)).Return(int32(4), nil)

	stats, err := svc.GetOverviewStats(ctx, 9, "", "2024-01-01", "2024-06-30")
	assert.NoError(t, err)
	assert.Equal(t, int32(50), stats.TotalVolunteers)
	assert.Equal(t, int32(41), stats.ActiveVolunteers)
	assert.Equal(t, 812.5, stats.TotalHours)
	assert.Equal(t, int32(24), stats.TotalOpportunities)
	assert.Equal(t, int32(18), stats.CompletedOpportunities)
	assert.Equal(t, int32(60), stats.ApplicationsByStatus["ACCEPTED"])
	assert.Equal(t, int32(12), stats.AttendancesByMethod["MANUAL"])
	assert.Equal(t, int32(4), stats.TotalTeams)
}
