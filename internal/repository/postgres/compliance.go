package postgres

import (
	"context"
	"database/sql"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type complianceRepository struct {
	db *sql.DB
}

func NewComplianceRepository(db *sql.DB) repository.ComplianceRepository {
	return &complianceRepository{db: db}
}

// ComplianceByDocType resolves all doc types in one grouped round trip.
// Each (requirement, active membership) pair contributes one unit to the
// denominator; the valid-document subquery is deduplicated so a volunteer
// with several documents of the same type still counts once per pair.
func (r *complianceRepository) ComplianceByDocType(ctx context.Context, orgID int32) ([]domain.DocTypeComplianceRow, error) {
	query := `SELECT r.doc_type,
	            count(*) AS total,
	            count(d.user_id) AS valid
	          FROM compliance_requirements r
	          JOIN memberships m ON m.org_id = r.org_id AND m.status = 'ACTIVE'
	          LEFT JOIN (
	            SELECT DISTINCT user_id, doc_type FROM compliance_documents
	            WHERE status = 'VALID' AND (expires_on IS NULL OR expires_on > NOW())
	          ) d ON d.user_id = m.user_id AND d.doc_type = r.doc_type
	          WHERE r.is_mandatory = TRUE AND ($1 = 0 OR r.org_id = $1)
	          GROUP BY r.doc_type
	          ORDER BY r.doc_type`
	logger.DatabaseCall("SELECT", "compliance_requirements JOIN memberships", "orgID", orgID)

	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.DocTypeComplianceRow
	for rows.Next() {
		var row domain.DocTypeComplianceRow
		if err := rows.Scan(&row.DocType, &row.Total, &row.Valid); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *complianceRepository) CountMandatoryRequirements(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM compliance_requirements WHERE is_mandatory = TRUE`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
