package domain

// OverviewStats is the organization dashboard headline block.
type OverviewStats struct {
	TotalVolunteers        int32            `json:"total_volunteers"`
	ActiveVolunteers       int32            `json:"active_volunteers"`
	TotalHours             float64          `json:"total_hours"`
	TotalOpportunities     int32            `json:"total_opportunities"`
	CompletedOpportunities int32            `json:"completed_opportunities"`
	ApplicationsByStatus   map[string]int32 `json:"applications_by_status"`
	AttendancesByMethod    map[string]int32 `json:"attendances_by_method"`
	TotalTeams             int32            `json:"total_teams"`
}

// HoursTrendPoint is one zero-filled bucket of the hours trend series.
type HoursTrendPoint struct {
	Period         string  `json:"period"`
	TotalHours     float64 `json:"total_hours"`
	VolunteerCount int32   `json:"volunteer_count"`
	LogCount       int32   `json:"log_count"`
}

// CountTrendPoint is one zero-filled bucket of a growth trend series.
type CountTrendPoint struct {
	Period string `json:"period"`
	Count  int32  `json:"count"`
}

type VolunteerParticipation struct {
	Total      int32   `json:"total"`
	Active     int32   `json:"active"`
	TrendPct   float64 `json:"trend_pct"`
	PrevActive int32   `json:"prev_active"`
}

type EventPerformance struct {
	OpportunityID int32   `json:"opportunity_id"`
	Title         string  `json:"title"`
	Capacity      int32   `json:"capacity"`
	Accepted      int32   `json:"accepted"`
	Attended      int32   `json:"attended"`
	FillRate      float64 `json:"fill_rate"`
	ShowUpRate    float64 `json:"show_up_rate"`
	Rank          int32   `json:"rank"`
}

type DocTypeCompliance struct {
	DocType string  `json:"doc_type"`
	Total   int32   `json:"total"`
	Valid   int32   `json:"valid"`
	Rate    float64 `json:"rate"`
}

// ComplianceStatus carries per-doc-type rates plus the pooled overall rate
// (summed numerators over summed denominators, never a mean of rates).
type ComplianceStatus struct {
	ByDocType   []DocTypeCompliance `json:"by_doc_type"`
	OverallRate float64             `json:"overall_rate"`
}

// EngagementMetrics mixes averages (0 when the denominator is 0) with
// rates (100 when the denominator is 0); the two policies are intentional
// and must not be unified.
type EngagementMetrics struct {
	AverageHoursPerUser         float64 `json:"average_hours_per_user"`
	AverageOpportunitiesPerUser float64 `json:"average_opportunities_per_user"`
	UserRetentionRate           float64 `json:"user_retention_rate"`
	OrganizationRetentionRate   float64 `json:"organization_retention_rate"`
	MonthlyActiveUsers          int32   `json:"monthly_active_users"`
}

type TopVolunteer struct {
	UserID     int32   `json:"user_id"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
	LogCount   int32   `json:"log_count"`
	Rank       int32   `json:"rank"`
}

type TopOrganization struct {
	ID                 int32   `json:"id"`
	Name               string  `json:"name"`
	TotalHours         float64 `json:"total_hours"`
	TotalVolunteers    int32   `json:"total_volunteers"`
	TotalOpportunities int32   `json:"total_opportunities"`
	Rank               int32   `json:"rank"`
}

type PlatformOverview struct {
	TotalOrganizations  int32   `json:"total_organizations"`
	ActiveOrganizations int32   `json:"active_organizations"`
	TotalVolunteers     int32   `json:"total_volunteers"`
	ActiveVolunteers    int32   `json:"active_volunteers"`
	TotalHours          float64 `json:"total_hours"`
	TotalOpportunities  int32   `json:"total_opportunities"`
	ComplianceRate      float64 `json:"compliance_rate"`
}

type RetentionCohort struct {
	Month         string  `json:"month"`
	CohortSize    int32   `json:"cohort_size"`
	StillActive   int32   `json:"still_active"`
	RetentionRate float64 `json:"retention_rate"`
}
