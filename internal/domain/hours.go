package domain

import "time"

type VolunteerHourStatus string

const (
	VolunteerHourStatusApproved VolunteerHourStatus = "APPROVED"
	VolunteerHourStatusPending  VolunteerHourStatus = "PENDING"
	VolunteerHourStatusRejected VolunteerHourStatus = "REJECTED"
)

// VolunteerHour is one logged block of volunteer time. Only APPROVED rows
// count toward totals, trends, and retention activity.
type VolunteerHour struct {
	ID     int32               `json:"id"`
	UserID int32               `json:"user_id"`
	OrgID  int32               `json:"org_id"`
	Date   time.Time           `json:"date"`
	Hours  float64             `json:"hours"`
	Status VolunteerHourStatus `json:"status"`
}

// HourRow is the timestamped aggregate input the bucketing engine consumes.
type HourRow struct {
	UserID int32     `json:"user_id"`
	Date   time.Time `json:"date"`
	Hours  float64   `json:"hours"`
}

// HoursAggregate is the summed view of approved hours within a scope.
type HoursAggregate struct {
	TotalHours     float64 `json:"total_hours"`
	VolunteerCount int32   `json:"volunteer_count"`
	LogCount       int32   `json:"log_count"`
}
