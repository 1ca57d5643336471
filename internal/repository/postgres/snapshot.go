package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	metadata, err := json.Marshal(snapshot.Metadata)
	if err != nil {
		return err
	}
	query := `INSERT INTO metric_snapshots (metric_type, metric_date, metric_value, metadata, created_on)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	logger.DatabaseCall("INSERT", "metric_snapshots", "metricType", snapshot.MetricType)

	err = r.db.QueryRowContext(ctx, query,
		snapshot.MetricType, snapshot.MetricDate, snapshot.MetricValue, metadata).Scan(&snapshot.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "metricType", snapshot.MetricType)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "metricType", snapshot.MetricType)
	return nil
}

func (r *snapshotRepository) ListByTypeAndRange(ctx context.Context, metricType string, from, to time.Time) ([]domain.SnapshotPoint, error) {
	query := `SELECT metric_date, metric_value FROM metric_snapshots
	          WHERE metric_type = $1 AND metric_date BETWEEN $2 AND $3
	          ORDER BY metric_date`
	rows, err := r.db.QueryContext(ctx, query, metricType, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.SnapshotPoint
	for rows.Next() {
		var p domain.SnapshotPoint
		if err := rows.Scan(&p.MetricDate, &p.MetricValue); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
