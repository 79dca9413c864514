package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmikh/job-tracker/internal/models"
)

// CreateDocument creates a new document metadata row
func (r *Repository) CreateDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (job_application_id, filename, filepath, file_size, content_type, document_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		doc.JobApplicationID, doc.Filename, doc.Filepath, doc.FileSize, doc.ContentType, doc.DocumentType).
		Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// FindDocumentByID retrieves a document, scoped to the owner of its job
// application
func (r *Repository) FindDocumentByID(ctx context.Context, id, userID int64) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT d.id, d.job_application_id, d.filename, d.filepath, d.file_size, d.content_type, d.document_type, d.created_at
		FROM documents d
		JOIN job_applications j ON j.id = d.job_application_id
		WHERE d.id = $1 AND j.user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&doc.ID, &doc.JobApplicationID, &doc.Filename, &doc.Filepath,
			&doc.FileSize, &doc.ContentType, &doc.DocumentType, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return doc, nil
}

// ListDocumentsByJob retrieves all documents attached to a job application
func (r *Repository) ListDocumentsByJob(ctx context.Context, jobID int64) ([]*models.Document, error) {
	query := `
		SELECT id, job_application_id, filename, filepath, file_size, content_type, document_type, created_at
		FROM documents
		WHERE job_application_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []*models.Document{}
	for rows.Next() {
		doc := &models.Document{}
		if err := rows.Scan(&doc.ID, &doc.JobApplicationID, &doc.Filename, &doc.Filepath,
			&doc.FileSize, &doc.ContentType, &doc.DocumentType, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document metadata row
func (r *Repository) DeleteDocument(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
