package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) CountTotal(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM organizations`).Scan(&count)
	return count, err
}

func (r *organizationRepository) CountActive(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM organizations WHERE status = 'ACTIVE'`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *organizationRepository) CreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	query := `SELECT created_on FROM organizations WHERE created_on BETWEEN $1 AND $2 ORDER BY created_on`
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

func (r *organizationRepository) TopOrganizations(ctx context.Context, limit int32) ([]domain.TopOrganization, error) {
	// Per-org subselects instead of joins so the aggregates don't multiply
	// across the three independent child tables.
	query := `SELECT o.id, o.name,
	            COALESCE((SELECT SUM(h.hours) FROM volunteer_hours h
	                      WHERE h.org_id = o.id AND h.status = 'APPROVED'), 0) AS total_hours,
	            (SELECT count(*) FROM memberships m
	             WHERE m.org_id = o.id AND m.status = 'ACTIVE') AS total_volunteers,
	            (SELECT count(*) FROM opportunities p
	             WHERE p.org_id = o.id) AS total_opportunities
	          FROM organizations o
	          WHERE o.status = 'ACTIVE'
	          ORDER BY total_hours DESC, o.id
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.TopOrganization
	for rows.Next() {
		var org domain.TopOrganization
		if err := rows.Scan(&org.ID, &org.Name, &org.TotalHours, &org.TotalVolunteers, &org.TotalOpportunities); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
