package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/repository"
	"github.com/dmikh/job-tracker/internal/schemas"
)

// CreateJob creates a new job application for the user
func (s *Service) CreateJob(ctx context.Context, userID int64, req *schemas.JobApplicationCreateRequest) (*models.JobApplication, error) {
	job := req.ToModel(userID)
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	s.log.Infof("Job application created for user %d: %s at %s", userID, job.JobTitle, job.CompanyName)
	return job, nil
}

// GetJob retrieves one of the user's job applications. Applications owned by
// other users look exactly like missing ones.
func (s *Service) GetJob(ctx context.Context, id, userID int64) (*models.JobApplication, error) {
	job, err := s.repo.FindJobByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound(fmt.Sprintf("job application with id %d not found", id))
	}
	return job, err
}

// ListJobs returns one page of the user's applications with optional status
// and company filters. Page and size are clamped to configured bounds.
func (s *Service) ListJobs(ctx context.Context, userID int64, page, size int,
	status models.ApplicationStatus, company string) (*models.Page, error) {

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = s.config.DefaultPageSize
	}
	if size > s.config.MaxPageSize {
		size = s.config.MaxPageSize
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid status: %s", status))
	}

	items, err := s.repo.ListJobs(ctx, userID, (page-1)*size, size, status, company)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountJobs(ctx, userID, status, company)
	if err != nil {
		return nil, err
	}

	pages := (total + size - 1) / size
	return &models.Page{Items: items, Total: total, Page: page, Size: size, Pages: pages}, nil
}

// UpdateJob applies a partial update to one of the user's applications
func (s *Service) UpdateJob(ctx context.Context, id, userID int64, req *schemas.JobApplicationUpdateRequest) (*models.JobApplication, error) {
	job, err := s.repo.UpdateJob(ctx, id, userID, req.ToPatch())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound(fmt.Sprintf("job application with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	s.log.Infof("Job application %d updated for user %d", id, userID)
	return job, nil
}

// DeleteJob removes an application together with its attached files on disk.
// Document rows cascade in the database.
func (s *Service) DeleteJob(ctx context.Context, id, userID int64) error {
	if _, err := s.repo.FindJobByID(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("job application with id %d not found", id))
		}
		return err
	}

	docs, err := s.repo.ListDocumentsByJob(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteJob(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("job application with id %d not found", id))
		}
		return err
	}

	for _, doc := range docs {
		if err := s.files.Delete(doc.Filepath); err != nil {
			s.log.Warnf("Failed to remove file %s: %v", doc.Filepath, err)
		}
	}

	s.log.Infof("Job application %d deleted for user %d", id, userID)
	return nil
}

// JobStats returns the user's application counts grouped by status
func (s *Service) JobStats(ctx context.Context, userID int64) (*models.ApplicationStats, error) {
	return s.repo.JobStats(ctx, userID)
}

// RecentJobs returns the user's latest applications
func (s *Service) RecentJobs(ctx context.Context, userID int64, limit int) ([]*models.JobApplication, error) {
	if limit < 1 {
		limit = 5
	}
	return s.repo.RecentJobs(ctx, userID, limit)
}

// AllJobs returns every application the user owns, for the XML export
func (s *Service) AllJobs(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	return s.repo.ListAllJobsByUser(ctx, userID)
}
