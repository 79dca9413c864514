package models

import "time"

// ApplicationStatus is the lifecycle stage of a job application
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// AllStatuses lists every valid application status
var AllStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

// Valid reports whether s is a known application status
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// JobApplication represents a tracked job application
type JobApplication struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	CompanyName    string            `json:"company_name"`
	JobTitle       string            `json:"job_title"`
	JobURL         string            `json:"job_url,omitempty"`
	Location       string            `json:"location,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    *time.Time        `json:"applied_date,omitempty"`
	InterviewDate  *time.Time        `json:"interview_date,omitempty"`
	FollowUpDate   *time.Time        `json:"follow_up_date,omitempty"`
	JobDescription string            `json:"job_description,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	ContactPerson  string            `json:"contact_person,omitempty"`
	ContactEmail   string            `json:"contact_email,omitempty"`
	ContactPhone   string            `json:"contact_phone,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
