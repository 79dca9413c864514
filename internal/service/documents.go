package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/repository"
)

// UploadDocument validates and stores an uploaded file under a job the user
// owns, then records its metadata. The file is removed again if the metadata
// insert fails.
func (s *Service) UploadDocument(ctx context.Context, userID, jobID int64,
	filename, contentType string, docType models.DocumentType, r io.Reader) (*models.Document, error) {

	if !docType.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid document type: %s", docType))
	}

	if _, err := s.repo.FindJobByID(ctx, jobID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("job application with id %d not found", jobID))
		}
		return nil, err
	}

	relPath, size, err := s.files.Save(userID, jobID, filename, contentType, r)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		JobApplicationID: jobID,
		Filename:         filename,
		Filepath:         relPath,
		FileSize:         size,
		ContentType:      contentType,
		DocumentType:     docType,
	}

	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		if delErr := s.files.Delete(relPath); delErr != nil {
			s.log.Warnf("Failed to remove orphaned file %s: %v", relPath, delErr)
		}
		return nil, err
	}

	s.log.Infof("Document %s uploaded for job %d (user %d)", filename, jobID, userID)
	return doc, nil
}

// ListDocuments returns the documents attached to a job the user owns
func (s *Service) ListDocuments(ctx context.Context, userID, jobID int64) ([]*models.Document, error) {
	if _, err := s.repo.FindJobByID(ctx, jobID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("job application with id %d not found", jobID))
		}
		return nil, err
	}
	return s.repo.ListDocumentsByJob(ctx, jobID)
}

// DocumentPath resolves a document the user owns to its metadata and absolute
// file path, for serving a download
func (s *Service) DocumentPath(ctx context.Context, userID, docID int64) (*models.Document, string, error) {
	doc, err := s.repo.FindDocumentByID(ctx, docID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", apperrors.NotFound(fmt.Sprintf("document with id %d not found", docID))
		}
		return nil, "", err
	}

	path, err := s.files.Path(doc.Filepath)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// DeleteDocument removes a document's metadata row and its file on disk
func (s *Service) DeleteDocument(ctx context.Context, userID, docID int64) error {
	doc, err := s.repo.FindDocumentByID(ctx, docID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("document with id %d not found", docID))
		}
		return err
	}

	if err := s.repo.DeleteDocument(ctx, doc.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("document with id %d not found", docID))
		}
		return err
	}

	if err := s.files.Delete(doc.Filepath); err != nil {
		s.log.Warnf("Failed to remove file %s: %v", doc.Filepath, err)
	}

	s.log.Infof("Document %d deleted for user %d", docID, userID)
	return nil
}
