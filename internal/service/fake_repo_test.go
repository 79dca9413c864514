package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/repository"
)

// fakeRepo is an in-memory Repository for service tests
type fakeRepo struct {
	users  map[int64]*models.User
	jobs   map[int64]*models.JobApplication
	docs   map[int64]*models.Document
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: map[int64]*models.User{},
		jobs:  map[int64]*models.JobApplication{},
		docs:  map[int64]*models.Document{},
	}
}

func (f *fakeRepo) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) ListUsers(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeRepo) CreateJob(_ context.Context, job *models.JobApplication) error {
	job.ID = f.id()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeRepo) FindJobByID(_ context.Context, id, userID int64) (*models.JobApplication, error) {
	job, ok := f.jobs[id]
	if !ok || job.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return job, nil
}

func (f *fakeRepo) matchJobs(userID int64, status models.ApplicationStatus, company string) []*models.JobApplication {
	var jobs []*models.JobApplication
	for _, j := range f.jobs {
		if j.UserID != userID {
			continue
		}
		if status != "" && j.Status != status {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(j.CompanyName), strings.ToLower(company)) {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	return jobs
}

func (f *fakeRepo) ListJobs(_ context.Context, userID int64, offset, limit int,
	status models.ApplicationStatus, company string) ([]*models.JobApplication, error) {
	jobs := f.matchJobs(userID, status, company)
	if offset >= len(jobs) {
		return []*models.JobApplication{}, nil
	}
	jobs = jobs[offset:]
	if limit < len(jobs) {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (f *fakeRepo) CountJobs(_ context.Context, userID int64,
	status models.ApplicationStatus, company string) (int, error) {
	return len(f.matchJobs(userID, status, company)), nil
}

func (f *fakeRepo) UpdateJob(_ context.Context, id, userID int64, patch *models.JobApplicationPatch) (*models.JobApplication, error) {
	job, ok := f.jobs[id]
	if !ok || job.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.CompanyName != nil {
		job.CompanyName = *patch.CompanyName
	}
	if patch.JobTitle != nil {
		job.JobTitle = *patch.JobTitle
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.Notes != nil {
		job.Notes = *patch.Notes
	}
	if patch.InterviewDate != nil {
		job.InterviewDate = patch.InterviewDate
	}
	if patch.FollowUpDate != nil {
		job.FollowUpDate = patch.FollowUpDate
	}
	job.UpdatedAt = time.Now()
	return job, nil
}

func (f *fakeRepo) DeleteJob(_ context.Context, id, userID int64) error {
	job, ok := f.jobs[id]
	if !ok || job.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.jobs, id)
	for docID, doc := range f.docs {
		if doc.JobApplicationID == id {
			delete(f.docs, docID)
		}
	}
	return nil
}

func (f *fakeRepo) JobStats(_ context.Context, userID int64) (*models.ApplicationStats, error) {
	stats := &models.ApplicationStats{}
	for _, j := range f.jobs {
		if j.UserID != userID {
			continue
		}
		switch j.Status {
		case models.StatusApplied:
			stats.Applied++
		case models.StatusInterview:
			stats.Interview++
		case models.StatusOffer:
			stats.Offer++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusWithdrawn:
			stats.Withdrawn++
		}
		stats.TotalApplications++
	}
	return stats, nil
}

func (f *fakeRepo) RecentJobs(ctx context.Context, userID int64, limit int) ([]*models.JobApplication, error) {
	return f.ListJobs(ctx, userID, 0, limit, "", "")
}

func (f *fakeRepo) ListAllJobsByUser(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	return f.matchJobs(userID, "", ""), nil
}

func (f *fakeRepo) DueFollowUps(_ context.Context, day time.Time) ([]*models.FollowUpReminder, error) {
	var reminders []*models.FollowUpReminder
	for _, j := range f.jobs {
		if j.FollowUpDate == nil {
			continue
		}
		y1, m1, d1 := j.FollowUpDate.Date()
		y2, m2, d2 := day.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			continue
		}
		if j.Status != models.StatusApplied && j.Status != models.StatusInterview {
			continue
		}
		owner := f.users[j.UserID]
		if owner == nil || !owner.IsActive {
			continue
		}
		reminders = append(reminders, &models.FollowUpReminder{
			Email:        owner.Email,
			Username:     owner.Username,
			CompanyName:  j.CompanyName,
			JobTitle:     j.JobTitle,
			FollowUpDate: *j.FollowUpDate,
		})
	}
	return reminders, nil
}

func (f *fakeRepo) CreateDocument(_ context.Context, doc *models.Document) error {
	doc.ID = f.id()
	doc.CreatedAt = time.Now()
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeRepo) FindDocumentByID(_ context.Context, id, userID int64) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	job, ok := f.jobs[doc.JobApplicationID]
	if !ok || job.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return doc, nil
}

func (f *fakeRepo) ListDocumentsByJob(_ context.Context, jobID int64) ([]*models.Document, error) {
	docs := []*models.Document{}
	for _, d := range f.docs {
		if d.JobApplicationID == jobID {
			docs = append(docs, d)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (f *fakeRepo) DeleteDocument(_ context.Context, id int64) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}
