package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type hoursRepository struct {
	db *sql.DB
}

func NewHoursRepository(db *sql.DB) repository.HoursRepository {
	return &hoursRepository{db: db}
}

func (r *hoursRepository) SumInRange(ctx context.Context, orgID int32, from, to time.Time) (*domain.HoursAggregate, error) {
	agg := &domain.HoursAggregate{}
	query := `SELECT COALESCE(SUM(hours), 0), count(DISTINCT user_id), count(*)
	          FROM volunteer_hours
	          WHERE status = 'APPROVED' AND date BETWEEN $2 AND $3
	            AND ($1 = 0 OR org_id = $1)`
	err := r.db.QueryRowContext(ctx, query, orgID, from, to).
		Scan(&agg.TotalHours, &agg.VolunteerCount, &agg.LogCount)
	if err != nil {
		return nil, err
	}
	return agg, nil
}

func (r *hoursRepository) ListInRange(ctx context.Context, orgID int32, from, to time.Time) ([]domain.HourRow, error) {
	query := `SELECT user_id, date, hours
	          FROM volunteer_hours
	          WHERE status = 'APPROVED' AND date BETWEEN $2 AND $3
	            AND ($1 = 0 OR org_id = $1)
	          ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HourRow
	for rows.Next() {
		var row domain.HourRow
		if err := rows.Scan(&row.UserID, &row.Date, &row.Hours); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *hoursRepository) CountActiveSince(ctx context.Context, orgID int32, since time.Time) (int32, error) {
	var count int32
	query := `SELECT count(DISTINCT user_id) FROM volunteer_hours
	          WHERE status = 'APPROVED' AND date >= $2
	            AND ($1 = 0 OR org_id = $1)`
	err := r.db.QueryRowContext(ctx, query, orgID, since).Scan(&count)
	return count, err
}

func (r *hoursRepository) UserRetentionCounts(ctx context.Context, orgID int32, firstFrom, firstTo, lastFrom, lastTo time.Time) (int32, int32, error) {
	var first, both int32
	query := `WITH first_window AS (
	            SELECT DISTINCT user_id FROM volunteer_hours
	            WHERE status = 'APPROVED' AND date BETWEEN $2 AND $3
	              AND ($1 = 0 OR org_id = $1)
	          ), last_window AS (
	            SELECT DISTINCT user_id FROM volunteer_hours
	            WHERE status = 'APPROVED' AND date BETWEEN $4 AND $5
	              AND ($1 = 0 OR org_id = $1)
	          )
	          SELECT (SELECT count(*) FROM first_window),
	                 (SELECT count(*) FROM first_window f
	                  JOIN last_window l ON l.user_id = f.user_id)`
	err := r.db.QueryRowContext(ctx, query, orgID, firstFrom, firstTo, lastFrom, lastTo).Scan(&first, &both)
	return first, both, err
}

func (r *hoursRepository) OrgRetentionCounts(ctx context.Context, firstFrom, firstTo, lastFrom, lastTo time.Time) (int32, int32, error) {
	var first, both int32
	query := `WITH first_window AS (
	            SELECT DISTINCT org_id FROM volunteer_hours
	            WHERE status = 'APPROVED' AND date BETWEEN $1 AND $2
	          ), last_window AS (
	            SELECT DISTINCT org_id FROM volunteer_hours
	            WHERE status = 'APPROVED' AND date BETWEEN $3 AND $4
	          )
	          SELECT (SELECT count(*) FROM first_window),
	                 (SELECT count(*) FROM first_window f
	                  JOIN last_window l ON l.org_id = f.org_id)`
	err := r.db.QueryRowContext(ctx, query, firstFrom, firstTo, lastFrom, lastTo).Scan(&first, &both)
	return first, both, err
}

func (r *hoursRepository) TopVolunteers(ctx context.Context, orgID int32, from, to time.Time, limit int32) ([]domain.TopVolunteer, error) {
	query := `SELECT u.id, u.name, COALESCE(SUM(h.hours), 0) AS total_hours, count(h.id) AS log_count
	          FROM memberships m
	          JOIN users u ON u.id = m.user_id
	          JOIN volunteer_hours h ON h.user_id = m.user_id AND h.org_id = m.org_id
	          WHERE m.org_id = $1 AND m.status = 'ACTIVE'
	            AND h.status = 'APPROVED' AND h.date BETWEEN $2 AND $3
	          GROUP BY u.id, u.name
	          ORDER BY total_hours DESC, u.id
	          LIMIT $4`
	rows, err := r.db.QueryContext(ctx, query, orgID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volunteers []domain.TopVolunteer
	for rows.Next() {
		var v domain.TopVolunteer
		if err := rows.Scan(&v.UserID, &v.Name, &v.TotalHours, &v.LogCount); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}
