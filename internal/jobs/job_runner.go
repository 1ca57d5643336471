package jobs

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository/postgres"
	"volunteerhub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	snapshot service.SnapshotService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, snapshot service.SnapshotService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		snapshot: snapshot,
		config:   cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// CaptureDailyMetrics archives the platform headline metrics. An aggregation
// either writes its full snapshot set or fails as a whole; the timeout
// bounds the grouped compliance join on large datasets.
func (jr *JobRunner) CaptureDailyMetrics() {
	jr.runWithRecovery("capture-daily-metrics", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := jr.snapshot.CaptureDailyMetrics(ctx); err != nil {
			logger.Error("Failed to capture daily metrics", "error", err)
		}
	})
}
