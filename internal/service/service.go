package service

import (
	"context"
	"io"
	"time"

	"github.com/dmikh/job-tracker/internal/config"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// Repository is the relational store the service layer depends on,
// implemented by repository.Repository
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]*models.User, error)

	CreateJob(ctx context.Context, job *models.JobApplication) error
	FindJobByID(ctx context.Context, id, userID int64) (*models.JobApplication, error)
	ListJobs(ctx context.Context, userID int64, offset, limit int, status models.ApplicationStatus, company string) ([]*models.JobApplication, error)
	CountJobs(ctx context.Context, userID int64, status models.ApplicationStatus, company string) (int, error)
	UpdateJob(ctx context.Context, id, userID int64, patch *models.JobApplicationPatch) (*models.JobApplication, error)
	DeleteJob(ctx context.Context, id, userID int64) error
	JobStats(ctx context.Context, userID int64) (*models.ApplicationStats, error)
	RecentJobs(ctx context.Context, userID int64, limit int) ([]*models.JobApplication, error)
	ListAllJobsByUser(ctx context.Context, userID int64) ([]*models.JobApplication, error)
	DueFollowUps(ctx context.Context, day time.Time) ([]*models.FollowUpReminder, error)

	CreateDocument(ctx context.Context, doc *models.Document) error
	FindDocumentByID(ctx context.Context, id, userID int64) (*models.Document, error)
	ListDocumentsByJob(ctx context.Context, jobID int64) ([]*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// FileStore is the byte store for uploaded documents, implemented by
// storage.FileStore
type FileStore interface {
	Save(userID, jobID int64, filename, contentType string, r io.Reader) (string, int64, error)
	Path(relPath string) (string, error)
	Delete(relPath string) error
}

// Service handles business logic
type Service struct {
	repo   Repository
	files  FileStore
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Repository, files FileStore, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, files: files, log: log, config: cfg}
}
