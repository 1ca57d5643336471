package domain

import "time"

type OpportunityStatus string

const (
	OpportunityStatusOpen      OpportunityStatus = "OPEN"
	OpportunityStatusClosed    OpportunityStatus = "CLOSED"
	OpportunityStatusCancelled OpportunityStatus = "CANCELLED"
)

type Opportunity struct {
	ID       int32             `json:"id"`
	OrgID    int32             `json:"org_id"`
	Title    string            `json:"title"`
	StartAt  time.Time         `json:"start_at"`
	EndAt    time.Time         `json:"end_at"`
	Status   OpportunityStatus `json:"status"`
	Capacity int32             `json:"capacity"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

type Application struct {
	ID            int32             `json:"id"`
	UserID        int32             `json:"user_id"`
	OpportunityID int32             `json:"opportunity_id"`
	Status        ApplicationStatus `json:"status"`
	CreatedOn     time.Time         `json:"created_on"`
}

type CheckInMethod string

const (
	CheckInMethodQR     CheckInMethod = "QR"
	CheckInMethodManual CheckInMethod = "MANUAL"
	CheckInMethodKiosk  CheckInMethod = "KIOSK"
)

type Attendance struct {
	ID            int32         `json:"id"`
	ApplicationID int32         `json:"application_id"`
	CheckInMethod CheckInMethod `json:"check_in_method"`
	CheckedInAt   time.Time     `json:"checked_in_at"`
}

// EventPerformanceRow is the per-opportunity aggregate the repository
// returns for fill/show-up rate computation.
type EventPerformanceRow struct {
	OpportunityID int32     `json:"opportunity_id"`
	Title         string    `json:"title"`
	StartAt       time.Time `json:"start_at"`
	Capacity      int32     `json:"capacity"`
	Accepted      int32     `json:"accepted"`
	Attended      int32     `json:"attended"`
}
