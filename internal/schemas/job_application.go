package schemas

import (
	"time"

	"github.com/dmikh/job-tracker/internal/models"
)

// JobApplicationCreateRequest is the body of POST /jobs
type JobApplicationCreateRequest struct {
	CompanyName    string     `json:"company_name" validate:"required,max=200"`
	JobTitle       string     `json:"job_title" validate:"required,max=200"`
	JobURL         string     `json:"job_url" validate:"omitempty,url,max=500"`
	Location       string     `json:"location" validate:"omitempty,max=200"`
	SalaryRange    string     `json:"salary_range" validate:"omitempty,max=100"`
	Status         string     `json:"status" validate:"omitempty,oneof=applied interview offer rejected withdrawn"`
	AppliedDate    *time.Time `json:"applied_date"`
	InterviewDate  *time.Time `json:"interview_date"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
	JobDescription string     `json:"job_description"`
	Notes          string     `json:"notes"`
	ContactPerson  string     `json:"contact_person" validate:"omitempty,max=200"`
	ContactEmail   string     `json:"contact_email" validate:"omitempty,email,max=200"`
	ContactPhone   string     `json:"contact_phone" validate:"omitempty,max=50"`
}

// ToModel converts the request into a JobApplication owned by userID
func (r *JobApplicationCreateRequest) ToModel(userID int64) *models.JobApplication {
	status := models.StatusApplied
	if r.Status != "" {
		status = models.ApplicationStatus(r.Status)
	}
	return &models.JobApplication{
		UserID:         userID,
		CompanyName:    r.CompanyName,
		JobTitle:       r.JobTitle,
		JobURL:         r.JobURL,
		Location:       r.Location,
		SalaryRange:    r.SalaryRange,
		Status:         status,
		AppliedDate:    r.AppliedDate,
		InterviewDate:  r.InterviewDate,
		FollowUpDate:   r.FollowUpDate,
		JobDescription: r.JobDescription,
		Notes:          r.Notes,
		ContactPerson:  r.ContactPerson,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
	}
}

// JobApplicationUpdateRequest is the body of PUT /jobs/{id}. Only fields
// present in the JSON are applied.
type JobApplicationUpdateRequest struct {
	CompanyName    *string    `json:"company_name" validate:"omitempty,max=200"`
	JobTitle       *string    `json:"job_title" validate:"omitempty,max=200"`
	JobURL         *string    `json:"job_url" validate:"omitempty,max=500"`
	Location       *string    `json:"location" validate:"omitempty,max=200"`
	SalaryRange    *string    `json:"salary_range" validate:"omitempty,max=100"`
	Status         *string    `json:"status" validate:"omitempty,oneof=applied interview offer rejected withdrawn"`
	AppliedDate    *time.Time `json:"applied_date"`
	InterviewDate  *time.Time `json:"interview_date"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
	JobDescription *string    `json:"job_description"`
	Notes          *string    `json:"notes"`
	ContactPerson  *string    `json:"contact_person" validate:"omitempty,max=200"`
	ContactEmail   *string    `json:"contact_email" validate:"omitempty,email,max=200"`
	ContactPhone   *string    `json:"contact_phone" validate:"omitempty,max=50"`
}

// ToPatch converts the request into a field-presence patch
func (r *JobApplicationUpdateRequest) ToPatch() *models.JobApplicationPatch {
	patch := &models.JobApplicationPatch{
		CompanyName:    r.CompanyName,
		JobTitle:       r.JobTitle,
		JobURL:         r.JobURL,
		Location:       r.Location,
		SalaryRange:    r.SalaryRange,
		AppliedDate:    r.AppliedDate,
		InterviewDate:  r.InterviewDate,
		FollowUpDate:   r.FollowUpDate,
		JobDescription: r.JobDescription,
		Notes:          r.Notes,
		ContactPerson:  r.ContactPerson,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
	}
	if r.Status != nil {
		status := models.ApplicationStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
