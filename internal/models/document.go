package models

import "time"

// DocumentType classifies an uploaded document
type DocumentType string

const (
	DocumentResume      DocumentType = "resume"
	DocumentCoverLetter DocumentType = "cover_letter"
	DocumentOther       DocumentType = "other"
)

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentResume, DocumentCoverLetter, DocumentOther:
		return true
	}
	return false
}

// Document represents metadata of a file attached to a job application.
// The bytes themselves live on disk under the upload directory.
type Document struct {
	ID               int64        `json:"id"`
	JobApplicationID int64        `json:"job_application_id"`
	Filename         string       `json:"filename"`
	Filepath         string       `json:"filepath"`
	FileSize         int64        `json:"file_size"`
	ContentType      string       `json:"content_type"`
	DocumentType     DocumentType `json:"document_type"`
	CreatedAt        time.Time    `json:"created_at"`
}
