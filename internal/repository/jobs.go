package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmikh/job-tracker/internal/models"
)

const jobColumns = `id, user_id, company_name, job_title, job_url, location, salary_range, status,
	applied_date, interview_date, follow_up_date, job_description, notes,
	contact_person, contact_email, contact_phone, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*models.JobApplication, error) {
	job := &models.JobApplication{}
	err := row.Scan(&job.ID, &job.UserID, &job.CompanyName, &job.JobTitle, &job.JobURL,
		&job.Location, &job.SalaryRange, &job.Status,
		&job.AppliedDate, &job.InterviewDate, &job.FollowUpDate,
		&job.JobDescription, &job.Notes,
		&job.ContactPerson, &job.ContactEmail, &job.ContactPhone,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// CreateJob creates a new job application in the database
func (r *Repository) CreateJob(ctx context.Context, job *models.JobApplication) error {
	query := `
		INSERT INTO job_applications (user_id, company_name, job_title, job_url, location, salary_range,
			status, applied_date, interview_date, follow_up_date, job_description, notes,
			contact_person, contact_email, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		job.UserID, job.CompanyName, job.JobTitle, job.JobURL, job.Location, job.SalaryRange,
		job.Status, job.AppliedDate, job.InterviewDate, job.FollowUpDate, job.JobDescription, job.Notes,
		job.ContactPerson, job.ContactEmail, job.ContactPhone).
		Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job application: %w", err)
	}
	return nil
}

// FindJobByID retrieves a job application by id, scoped to its owner
func (r *Repository) FindJobByID(ctx context.Context, id, userID int64) (*models.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE id = $1 AND user_id = $2`, jobColumns)
	job, err := scanJob(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job application: %w", err)
	}
	return job, nil
}

// jobFilter builds the WHERE clause shared by ListJobs and CountJobs
func jobFilter(userID int64, status models.ApplicationStatus, company string) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{userID}
	if status != "" {
		args = append(args, status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if company != "" {
		args = append(args, "%"+company+"%")
		clauses = append(clauses, fmt.Sprintf("company_name ILIKE $%d", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

// ListJobs retrieves one page of a user's job applications, newest first,
// optionally filtered by status and company-name substring
func (r *Repository) ListJobs(ctx context.Context, userID int64, offset, limit int,
	status models.ApplicationStatus, company string) ([]*models.JobApplication, error) {

	where, args := jobFilter(userID, status, company)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobApplication{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// CountJobs counts a user's job applications under the same filters as ListJobs
func (r *Repository) CountJobs(ctx context.Context, userID int64,
	status models.ApplicationStatus, company string) (int, error) {

	where, args := jobFilter(userID, status, company)
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM job_applications WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count job applications: %w", err)
	}
	return count, nil
}

// UpdateJob applies a partial update to a job application the user owns.
// Only non-nil patch fields are written.
func (r *Repository) UpdateJob(ctx context.Context, id, userID int64, patch *models.JobApplicationPatch) (*models.JobApplication, error) {
	sets := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.CompanyName != nil {
		add("company_name", *patch.CompanyName)
	}
	if patch.JobTitle != nil {
		add("job_title", *patch.JobTitle)
	}
	if patch.JobURL != nil {
		add("job_url", *patch.JobURL)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.SalaryRange != nil {
		add("salary_range", *patch.SalaryRange)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.AppliedDate != nil {
		add("applied_date", *patch.AppliedDate)
	}
	if patch.InterviewDate != nil {
		add("interview_date", *patch.InterviewDate)
	}
	if patch.FollowUpDate != nil {
		add("follow_up_date", *patch.FollowUpDate)
	}
	if patch.JobDescription != nil {
		add("job_description", *patch.JobDescription)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.ContactPerson != nil {
		add("contact_person", *patch.ContactPerson)
	}
	if patch.ContactEmail != nil {
		add("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		add("contact_phone", *patch.ContactPhone)
	}

	if len(sets) == 0 {
		return r.FindJobByID(ctx, id, userID)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE job_applications SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), jobColumns)

	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update job application: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job application the user owns. Attached document rows go
// with it via ON DELETE CASCADE.
func (r *Repository) DeleteJob(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete job application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete job application: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// JobStats counts a user's applications grouped by status
func (r *Repository) JobStats(ctx context.Context, userID int64) (*models.ApplicationStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM job_applications WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	defer rows.Close()

	stats := &models.ApplicationStats{}
	for rows.Next() {
		var status models.ApplicationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan statistics: %w", err)
		}
		switch status {
		case models.StatusApplied:
			stats.Applied = count
		case models.StatusInterview:
			stats.Interview = count
		case models.StatusOffer:
			stats.Offer = count
		case models.StatusRejected:
			stats.Rejected = count
		case models.StatusWithdrawn:
			stats.Withdrawn = count
		}
		stats.TotalApplications += count
	}
	return stats, rows.Err()
}

// RecentJobs retrieves the user's latest applications
func (r *Repository) RecentJobs(ctx context.Context, userID int64, limit int) ([]*models.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, jobColumns)
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent job applications: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobApplication{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListAllJobsByUser retrieves every application the user owns, newest first
func (r *Repository) ListAllJobsByUser(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE user_id = $1
		ORDER BY created_at DESC`, jobColumns)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobApplication{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// DueFollowUps finds applications whose follow-up falls on the given day and
// that are still in play, joined with the owner's contact details
func (r *Repository) DueFollowUps(ctx context.Context, day time.Time) ([]*models.FollowUpReminder, error) {
	query := `
		SELECT u.email, u.username, j.company_name, j.job_title, j.follow_up_date
		FROM job_applications j
		JOIN users u ON u.id = j.user_id
		WHERE j.follow_up_date::date = $1::date
		  AND j.status IN ('applied', 'interview')
		  AND u.is_active`
	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to find due follow-ups: %w", err)
	}
	defer rows.Close()

	var reminders []*models.FollowUpReminder
	for rows.Next() {
		rem := &models.FollowUpReminder{}
		if err := rows.Scan(&rem.Email, &rem.Username, &rem.CompanyName, &rem.JobTitle, &rem.FollowUpDate); err != nil {
			return nil, fmt.Errorf("failed to scan follow-up: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
