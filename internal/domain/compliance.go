package domain

import "time"

type ComplianceDocumentStatus string

const (
	ComplianceDocumentStatusValid    ComplianceDocumentStatus = "VALID"
	ComplianceDocumentStatusExpired  ComplianceDocumentStatus = "EXPIRED"
	ComplianceDocumentStatusRejected ComplianceDocumentStatus = "REJECTED"
	ComplianceDocumentStatusPending  ComplianceDocumentStatus = "PENDING"
)

// ComplianceRequirement is scoped to exactly one organization. Multiple
// organizations may require the same doc type independently.
type ComplianceRequirement struct {
	ID          int32  `json:"id"`
	OrgID       int32  `json:"org_id"`
	DocType     string `json:"doc_type"`
	IsMandatory bool   `json:"is_mandatory"`
}

type ComplianceDocument struct {
	ID        int32                    `json:"id"`
	UserID    int32                    `json:"user_id"`
	DocType   string                   `json:"doc_type"`
	Status    ComplianceDocumentStatus `json:"status"`
	ExpiresOn *time.Time               `json:"expires_on"`
}

// IsCurrentlyValid reports whether the document satisfies a requirement at
// the given instant: status VALID and not expired (a nil expiry never expires).
func (d *ComplianceDocument) IsCurrentlyValid(now time.Time) bool {
	if d.Status != ComplianceDocumentStatusValid {
		return false
	}
	return d.ExpiresOn == nil || d.ExpiresOn.After(now)
}

// DocTypeComplianceRow is the grouped aggregate the compliance repository
// returns per doc type: distinct active volunteers required to hold the
// document versus those holding a currently valid one.
type DocTypeComplianceRow struct {
	DocType string `json:"doc_type"`
	Total   int32  `json:"total"`
	Valid   int32  `json:"valid"`
}
