package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/dmikh/job-tracker/internal/config"
	"github.com/dmikh/job-tracker/internal/email"
	"github.com/dmikh/job-tracker/internal/handler"
	"github.com/dmikh/job-tracker/internal/migrations"
	"github.com/dmikh/job-tracker/internal/repository"
	"github.com/dmikh/job-tracker/internal/scheduler"
	"github.com/dmikh/job-tracker/internal/service"
	"github.com/dmikh/job-tracker/internal/storage"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := migrations.Up(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize layers
	files, err := storage.NewFileStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		logger.Fatalf("Failed to initialize file store: %v", err)
	}
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, files, logger, cfg)
	h := handler.NewHandler(svc, logger, cfg)

	// Follow-up reminder scheduler
	sender := email.NewSender(cfg, logger)
	sched := scheduler.NewScheduler(repo, sender, logger)
	if err := sched.Start(cfg.ReminderCron); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Setup router
	r := handler.NewRouter(h, svc)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
