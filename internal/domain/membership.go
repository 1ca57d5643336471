package domain

import "time"

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "ACTIVE"
	MembershipStatusPending   MembershipStatus = "PENDING"
	MembershipStatusSuspended MembershipStatus = "SUSPENDED"
	MembershipStatusRejected  MembershipStatus = "REJECTED"
)

// Membership links a user to an organization. At most one row exists per
// (org, user) pair; a volunteer counts as active when Status is ACTIVE.
type Membership struct {
	OrgID     int32            `json:"org_id"`
	UserID    int32            `json:"user_id"`
	Status    MembershipStatus `json:"status"`
	JoinedOn  *time.Time       `json:"joined_on"`
	CreatedOn time.Time        `json:"created_on"`
}

// CohortRow is one join-month cohort as returned by the membership
// repository: how many members joined that month and how many of them
// logged approved hours within the trailing activity window.
type CohortRow struct {
	Month       time.Time `json:"month"`
	CohortSize  int32     `json:"cohort_size"`
	StillActive int32     `json:"still_active"`
}
