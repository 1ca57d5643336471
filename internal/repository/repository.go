package repository

import (
	"context"
	"time"

	"volunteerhub-backend/internal/domain"
)

// Repositories are read-only aggregate facades over the persistence layer;
// the analytics core never mutates the underlying tables. The one writer is
// SnapshotRepository, which is append-only. An orgID of 0 means
// platform-wide scope wherever a method accepts one.

type OrganizationRepository interface {
	CountTotal(ctx context.Context) (int32, error)
	CountActive(ctx context.Context) (int32, error)
	// CreatedBetween returns creation timestamps for the growth trend.
	CreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
	// TopOrganizations returns per-organization aggregates over active
	// organizations, ordered by total hours descending. Ranking is the
	// caller's job.
	TopOrganizations(ctx context.Context, limit int32) ([]domain.TopOrganization, error)
}

type MembershipRepository interface {
	// CountByOrg returns total and active membership counts for one org.
	CountByOrg(ctx context.Context, orgID int32) (total, active int32, err error)
	// CountPlatform returns platform-wide total and active volunteer counts.
	CountPlatform(ctx context.Context) (total, active int32, err error)
	// UsersCreatedBetween returns user creation timestamps for the growth trend.
	UsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
	// RetentionCohorts groups an org's memberships by join month (creation
	// month when the join date is absent), newest first, and counts per
	// cohort the distinct members with approved hours since activeSince.
	RetentionCohorts(ctx context.Context, orgID, limit int32, activeSince time.Time) ([]domain.CohortRow, error)
}

type ComplianceRepository interface {
	// ComplianceByDocType returns one row per mandatory-requirement doc type
	// in scope: distinct (org, active volunteer) pairs required to hold the
	// document, and how many of those hold a currently valid one. A single
	// grouped query; "required" is organization-scoped, so a volunteer in
	// two requiring orgs counts twice.
	ComplianceByDocType(ctx context.Context, orgID int32) ([]domain.DocTypeComplianceRow, error)
	CountMandatoryRequirements(ctx context.Context) (int32, error)
}

type HoursRepository interface {
	// SumInRange aggregates approved hours within [from, to].
	SumInRange(ctx context.Context, orgID int32, from, to time.Time) (*domain.HoursAggregate, error)
	// ListInRange returns approved hour rows for bucketing.
	ListInRange(ctx context.Context, orgID int32, from, to time.Time) ([]domain.HourRow, error)
	// CountActiveSince counts distinct volunteers with approved hours on or
	// after since.
	CountActiveSince(ctx context.Context, orgID int32, since time.Time) (int32, error)
	// UserRetentionCounts counts distinct volunteers with approved hours in
	// the first window, and those active in both windows.
	UserRetentionCounts(ctx context.Context, orgID int32, firstFrom, firstTo, lastFrom, lastTo time.Time) (first, both int32, err error)
	// OrgRetentionCounts is the same measure over organizations.
	OrgRetentionCounts(ctx context.Context, firstFrom, firstTo, lastFrom, lastTo time.Time) (first, both int32, err error)
	// TopVolunteers sums approved hours per user within the range, scoped to
	// the org's active memberships, ordered by hours descending.
	TopVolunteers(ctx context.Context, orgID int32, from, to time.Time, limit int32) ([]domain.TopVolunteer, error)
}

type OpportunityRepository interface {
	// CountByOrg returns total opportunities and those already ended.
	CountByOrg(ctx context.Context, orgID int32, now time.Time) (total, completed int32, err error)
	ApplicationsByStatus(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error)
	AttendancesByMethod(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error)
	CountTeams(ctx context.Context, orgID int32) (int32, error)
	// EventPerformance returns per-opportunity capacity, accepted
	// application, and attendance aggregates for opportunities starting in
	// the range.
	EventPerformance(ctx context.Context, orgID int32, from, to time.Time) ([]domain.EventPerformanceRow, error)
	// AcceptedApplicationCounts returns accepted applications and distinct
	// applicants within the range.
	AcceptedApplicationCounts(ctx context.Context, orgID int32, from, to time.Time) (accepted, applicants int32, err error)
}

type SnapshotRepository interface {
	// Create appends one snapshot row. Snapshots are immutable once written.
	Create(ctx context.Context, snapshot *domain.MetricSnapshot) error
	ListByTypeAndRange(ctx context.Context, metricType string, from, to time.Time) ([]domain.SnapshotPoint, error)
}
