package handler

import (
	"net/http"
	"strconv"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/export"
	"github.com/dmikh/job-tracker/internal/middleware"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/schemas"
	"github.com/gorilla/mux"
)

func (h *Handler) pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.BadRequest("invalid id")
	}
	return id, nil
}

// CreateJob handles job application creation
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	var req schemas.JobApplicationCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	job, err := h.svc.CreateJob(r.Context(), user.ID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, job)
}

// ListJobs handles the filtered, paginated listing
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = h.cfg.DefaultPageSize
	}
	status := models.ApplicationStatus(q.Get("status"))
	company := q.Get("company")

	result, err := h.svc.ListJobs(r.Context(), user.ID, page, size, status, company)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// GetJob handles fetching a single job application
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	id, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	job, err := h.svc.GetJob(r.Context(), id, user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, job)
}

// UpdateJob handles a partial update of a job application
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	id, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req schemas.JobApplicationUpdateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	job, err := h.svc.UpdateJob(r.Context(), id, user.ID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, job)
}

// DeleteJob handles deletion of a job application and its files
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	id, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.DeleteJob(r.Context(), id, user.ID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, schemas.MessageResponse{Message: "job application deleted successfully"})
}

// JobStats handles the per-status statistics
func (h *Handler) JobStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	stats, err := h.svc.JobStats(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// RecentJobs handles the latest-applications listing
func (h *Handler) RecentJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	jobs, err := h.svc.RecentJobs(r.Context(), user.ID, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, jobs)
}

// ExportJobs streams every application of the user as an XML document
func (h *Handler) ExportJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	jobs, err := h.svc.AllJobs(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	doc := export.ApplicationsXML(user, jobs)
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="job_applications.xml"`)
	if _, err := doc.WriteTo(w); err != nil {
		h.log.Errorf("Failed to write XML export: %v", err)
	}
}
