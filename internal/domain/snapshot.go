package domain

import "time"

// Metric types written by the snapshot jobs.
const (
	MetricTypeTotalVolunteers  = "total_volunteers"
	MetricTypeActiveVolunteers = "active_volunteers"
	MetricTypeTotalHours       = "total_hours"
	MetricTypeComplianceRate   = "compliance_rate"
	MetricTypeTotalOrgs        = "total_organizations"
)

// MetricSnapshot is an append-only record of a computed metric at a point
// in time. Snapshots are never updated or deleted once written.
type MetricSnapshot struct {
	ID          int32             `json:"id"`
	MetricType  string            `json:"metric_type"`
	MetricDate  time.Time         `json:"metric_date"`
	MetricValue float64           `json:"metric_value"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
}

// SnapshotPoint is one historical charting point read back from the store.
type SnapshotPoint struct {
	MetricDate  time.Time `json:"metric_date"`
	MetricValue float64   `json:"metric_value"`
}
