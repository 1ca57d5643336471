package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
)

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) CountTotal(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOrganizationRepo) CountActive(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOrganizationRepo) CreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
func (m *MockOrganizationRepo) TopOrganizations(ctx context.Context, limit int32) ([]domain.TopOrganization, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopOrganization), args.Error(1)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) CountByOrg(ctx context.Context, orgID int32) (int32, int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}
func (m *MockMembershipRepo) CountPlatform(ctx context.Context) (int32, int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}
func (m *MockMembershipRepo) UsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
func (m *MockMembershipRepo) RetentionCohorts(ctx context.Context, orgID, limit int32, activeSince time.Time) ([]domain.CohortRow, error) {
	args := m.Called(ctx, orgID, limit, activeSince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CohortRow), args.Error(1)
}

// MockComplianceRepo
type MockComplianceRepo struct {
	mock.Mock
}

func (m *MockComplianceRepo) ComplianceByDocType(ctx context.Context, orgID int32) ([]domain.DocTypeComplianceRow, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocTypeComplianceRow), args.Error(1)
}
func (m *MockComplianceRepo) CountMandatoryRequirements(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockHoursRepo
type MockHoursRepo struct {
	mock.Mock
}

func (m *MockHoursRepo) SumInRange(ctx context.Context, orgID int32, from, to time.Time) (*domain.HoursAggregate, error) {
	args := m.Called(ctx, orgID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HoursAggregate), args.Error(1)
}
func (m *MockHoursRepo) ListInRange(ctx context.Context, orgID int32, from, to time.Time) ([]domain.HourRow, error) {
	args := m.Called(ctx, orgID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HourRow), args.Error(1)
}
func (m *MockHoursRepo) CountActiveSince(ctx context.Context, orgID int32, since time.Time) (int32, error) {
	args := m.Called(ctx, orgID, since)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockHoursRepo) UserRetentionCounts(ctx context.Context, orgID int32, firstFrom, firstTo, lastFrom, lastTo time.Time) (int32, int32, error) {
	args := m.Called(ctx, orgID, firstFrom, firstTo, lastFrom, lastTo)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}
func (m *MockHoursRepo) OrgRetentionCounts(ctx context.Context, firstFrom, firstTo, lastFrom, lastTo time.Time) (int32, int32, error) {
	args := m.Called(ctx, firstFrom, firstTo, lastFrom, lastTo)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}
func (m *MockHoursRepo) TopVolunteers(ctx context.Context, orgID int32, from, to time.Time, limit int32) ([]domain.TopVolunteer, error) {
	args := m.Called(ctx, orgID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopVolunteer), args.Error(1)
}

// MockOpportunityRepo
type MockOpportunityRepo struct {
	mock.Mock
}

func (m *MockOpportunityRepo) CountByOrg(ctx context.Context, orgID int32, now time.Time) (int32, int32, error) {
	args := m.Called(ctx, orgID, now)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}
func (m *MockOpportunityRepo) ApplicationsByStatus(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error) {
	args := m.Called(ctx, orgID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int32), args.Error(1)
}
func (m *MockOpportunityRepo) AttendancesByMethod(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error) {
	args := m.Called(ctx, orgID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int32), args.Error(1)
}
func (m *MockOpportunityRepo) CountTeams(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOpportunityRepo) EventPerformance(ctx context.Context, orgID int32, from, to time.Time) ([]domain.EventPerformanceRow, error) {
	args := m.Called(ctx, orgID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventPerformanceRow), args.Error(1)
}
func (m *MockOpportunityRepo) AcceptedApplicationCounts(ctx context.Context, orgID int32, from, to time.Time) (int32, int32, error) {
	args := m.Called(ctx, orgID, from, to)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}

// MockSnapshotRepo
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Create(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}
func (m *MockSnapshotRepo) ListByTypeAndRange(ctx context.Context, metricType string, from, to time.Time) ([]domain.SnapshotPoint, error) {
	args := m.Called(ctx, metricType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SnapshotPoint), args.Error(1)
}
