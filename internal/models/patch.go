package models

import "time"

// JobApplicationPatch carries a partial update. A nil field means "leave
// unchanged"; a non-nil field is written even when it points at a zero value.
type JobApplicationPatch struct {
	CompanyName    *string
	JobTitle       *string
	JobURL         *string
	Location       *string
	SalaryRange    *string
	Status         *ApplicationStatus
	AppliedDate    *time.Time
	InterviewDate  *time.Time
	FollowUpDate   *time.Time
	JobDescription *string
	Notes          *string
	ContactPerson  *string
	ContactEmail   *string
	ContactPhone   *string
}

// FollowUpReminder is one due follow-up joined with its owner's contact info
type FollowUpReminder struct {
	Email        string
	Username     string
	CompanyName  string
	JobTitle     string
	FollowUpDate time.Time
}
