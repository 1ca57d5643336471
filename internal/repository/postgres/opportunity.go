package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type opportunityRepository struct {
	db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) CountByOrg(ctx context.Context, orgID int32, now time.Time) (int32, int32, error) {
	var total, completed int32
	query := `SELECT count(*),
	            count(*) FILTER (WHERE end_at < $2)
	          FROM opportunities WHERE ($1 = 0 OR org_id = $1)`
	err := r.db.QueryRowContext(ctx, query, orgID, now).Scan(&total, &completed)
	return total, completed, err
}

func (r *opportunityRepository) ApplicationsByStatus(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error) {
	query := `SELECT a.status, count(*)
	          FROM applications a
	          JOIN opportunities p ON p.id = a.opportunity_id
	          WHERE ($1 = 0 OR p.org_id = $1) AND a.created_on BETWEEN $2 AND $3
	          GROUP BY a.status`
	rows, err := r.db.QueryContext(ctx, query, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int32)
	for rows.Next() {
		var status string
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *opportunityRepository) AttendancesByMethod(ctx context.Context, orgID int32, from, to time.Time) (map[string]int32, error) {
	query := `SELECT t.check_in_method, count(*)
	          FROM attendances t
	          JOIN applications a ON a.id = t.application_id
	          JOIN opportunities p ON p.id = a.opportunity_id
	          WHERE ($1 = 0 OR p.org_id = $1) AND t.checked_in_at BETWEEN $2 AND $3
	          GROUP BY t.check_in_method`
	rows, err := r.db.QueryContext(ctx, query, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int32)
	for rows.Next() {
		var method string
		var count int32
		if err := rows.Scan(&method, &count); err != nil {
			return nil, err
		}
		counts[method] = count
	}
	return counts, rows.Err()
}

func (r *opportunityRepository) CountTeams(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM teams WHERE ($1 = 0 OR org_id = $1)`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&count)
	return count, err
}

func (r *opportunityRepository) EventPerformance(ctx context.Context, orgID int32, from, to time.Time) ([]domain.EventPerformanceRow, error) {
	query := `SELECT p.id, p.title, p.start_at, p.capacity,
	            count(a.id) FILTER (WHERE a.status = 'ACCEPTED') AS accepted,
	            count(t.id) AS attended
	          FROM opportunities p
	          LEFT JOIN applications a ON a.opportunity_id = p.id
	          LEFT JOIN attendances t ON t.application_id = a.id
	          WHERE ($1 = 0 OR p.org_id = $1) AND p.start_at BETWEEN $2 AND $3
	          GROUP BY p.id, p.title, p.start_at, p.capacity
	          ORDER BY p.start_at`
	rows, err := r.db.QueryContext(ctx, query, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.EventPerformanceRow
	for rows.Next() {
		var e domain.EventPerformanceRow
		if err := rows.Scan(&e.OpportunityID, &e.Title, &e.StartAt, &e.Capacity, &e.Accepted, &e.Attended); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *opportunityRepository) AcceptedApplicationCounts(ctx context.Context, orgID int32, from, to time.Time) (int32, int32, error) {
	var accepted, applicants int32
	query := `SELECT count(*), count(DISTINCT a.user_id)
	          FROM applications a
	          JOIN opportunities p ON p.id = a.opportunity_id
	          WHERE a.status = 'ACCEPTED' AND ($1 = 0 OR p.org_id = $1)
	            AND a.created_on BETWEEN $2 AND $3`
	err := r.db.QueryRowContext(ctx, query, orgID, from, to).Scan(&accepted, &applicants)
	return accepted, applicants, err
}
