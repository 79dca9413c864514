// Package storage is the on-disk file store for uploaded documents. Metadata
// lives in the database; this package only handles bytes and paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// FileStore writes uploads under baseDir/user_{uid}/job_{jid}/
type FileStore struct {
	baseDir string
	maxSize int64
}

// NewFileStore creates the base upload directory if needed
func NewFileStore(baseDir string, maxSize int64) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &FileStore{baseDir: baseDir, maxSize: maxSize}, nil
}

// validate checks filename extension and declared MIME type against the
// allow-lists
func (s *FileStore) validate(filename, contentType string) error {
	if filename == "" {
		return apperrors.BadRequest("no file provided")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return apperrors.BadRequest(fmt.Sprintf("file type not allowed: %s", ext))
	}
	if !allowedMIMETypes[contentType] {
		return apperrors.BadRequest(fmt.Sprintf("content type not allowed: %s", contentType))
	}
	return nil
}

// uniqueName builds "<stem>_<uuid8><ext>" so repeated uploads never collide
func uniqueName(filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filepath.Base(filename), ext)
	return fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:8], ext)
}

// Save validates and writes an upload, returning the path relative to the
// base directory and the byte count. The size ceiling is enforced before
// anything is written.
func (s *FileStore) Save(userID, jobID int64, filename, contentType string, r io.Reader) (string, int64, error) {
	if err := s.validate(filename, contentType); err != nil {
		return "", 0, err
	}

	// Read one byte past the limit to detect oversized uploads
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", 0, apperrors.BadRequest(fmt.Sprintf("file too large, maximum size: %d bytes", s.maxSize))
	}

	dir := filepath.Join(s.baseDir, fmt.Sprintf("user_%d", userID), fmt.Sprintf("job_%d", jobID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create directory: %w", err)
	}

	name := uniqueName(filename)
	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	relPath, err := filepath.Rel(s.baseDir, fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to build relative path: %w", err)
	}
	return relPath, int64(len(data)), nil
}

// Path resolves a stored relative path to an absolute one, verifying the file
// exists
func (s *FileStore) Path(relPath string) (string, error) {
	fullPath := filepath.Join(s.baseDir, relPath)
	if _, err := os.Stat(fullPath); err != nil {
		return "", apperrors.NotFound("file not found")
	}
	return fullPath, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *FileStore) Delete(relPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
