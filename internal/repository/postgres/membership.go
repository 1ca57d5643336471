package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) CountByOrg(ctx context.Context, orgID int32) (int32, int32, error) {
	var total, active int32
	query := `SELECT count(*),
	            count(*) FILTER (WHERE status = 'ACTIVE')
	          FROM memberships WHERE org_id = $1`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&total, &active)
	return total, active, err
}

func (r *membershipRepository) CountPlatform(ctx context.Context) (int32, int32, error) {
	var total, active int32
	query := `SELECT count(DISTINCT user_id),
	            count(DISTINCT user_id) FILTER (WHERE status = 'ACTIVE')
	          FROM memberships`
	err := r.db.QueryRowContext(ctx, query).Scan(&total, &active)
	return total, active, err
}

func (r *membershipRepository) UsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	query := `SELECT created_on FROM users WHERE created_on BETWEEN $1 AND $2 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, rows.Err()
}

func (r *membershipRepository) RetentionCohorts(ctx context.Context, orgID, limit int32, activeSince time.Time) ([]domain.CohortRow, error) {
	// Cohort month falls back to the creation month when no join date was
	// recorded. Activity is measured against "now", not the cohort month.
	query := `SELECT date_trunc('month', COALESCE(m.joined_on, m.created_on)) AS cohort_month,
	            count(DISTINCT m.user_id) AS cohort_size,
	            count(DISTINCT h.user_id) AS still_active
	          FROM memberships m
	          LEFT JOIN volunteer_hours h
	            ON h.user_id = m.user_id AND h.org_id = m.org_id
	            AND h.status = 'APPROVED' AND h.date >= $3
	          WHERE m.org_id = $1
	          GROUP BY cohort_month
	          ORDER BY cohort_month DESC
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, orgID, limit, activeSince)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cohorts []domain.CohortRow
	for rows.Next() {
		var c domain.CohortRow
		if err := rows.Scan(&c.Month, &c.CohortSize, &c.StillActive); err != nil {
			return nil, err
		}
		cohorts = append(cohorts, c)
	}
	return cohorts, rows.Err()
}
