package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/jobs"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository/postgres"
	"volunteerhub-backend/internal/scheduler"
	"volunteerhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'capture-daily-metrics')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VolunteerHub snapshot daemon...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	adminService := service.NewAdminAnalyticsService(
		store.OrganizationRepository,
		store.MembershipRepository,
		store.ComplianceRepository,
		store.HoursRepository,
		store.OpportunityRepository,
		cfg.Analytics.ActivityWindowDays,
		cfg.Analytics.DefaultTopLimit,
	)
	snapshotService := service.NewSnapshotService(store.SnapshotRepository, adminService)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, snapshotService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Snapshot scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down snapshot scheduler...")
	cronScheduler.Stop()
	logger.Info("Snapshot scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "capture-daily-metrics":
		jobRunner.CaptureDailyMetrics()
	default:
		logger.Error("Unknown job name", "job", jobName)
		log.Printf("Available jobs:\n  - capture-daily-metrics\n")
		os.Exit(1)
	}
}
