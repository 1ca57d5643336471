package domain

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "ACTIVE"
	OrganizationStatusPending   OrganizationStatus = "PENDING"
	OrganizationStatusSuspended OrganizationStatus = "SUSPENDED"
	OrganizationStatusArchived  OrganizationStatus = "ARCHIVED"
)

type Organization struct {
	ID        int32              `json:"id"`
	Name      string             `json:"name"`
	Status    OrganizationStatus `json:"status"`
	CreatedOn string             `json:"created_on"`
}
