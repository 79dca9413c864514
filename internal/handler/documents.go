package handler

import (
	"net/http"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/middleware"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/schemas"
)

// UploadDocument handles a multipart upload of a document for a job
// application. Expects a "file" part and a "document_type" form value.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	jobID, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	// One spare MiB for the multipart framing around the size-capped file
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize + 1<<20); err != nil {
		h.writeError(w, apperrors.BadRequest("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, apperrors.BadRequest("no file provided"))
		return
	}
	defer file.Close()

	docType := models.DocumentType(r.FormValue("document_type"))
	if docType == "" {
		docType = models.DocumentOther
	}

	doc, err := h.svc.UploadDocument(r.Context(), user.ID, jobID,
		header.Filename, header.Header.Get("Content-Type"), docType, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, doc)
}

// ListDocuments handles listing documents of a job application
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	jobID, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	docs, err := h.svc.ListDocuments(r.Context(), user.ID, jobID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, docs)
}

// DownloadDocument serves the stored file bytes of a document
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	docID, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	doc, path, err := h.svc.DocumentPath(r.Context(), user.ID, docID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	http.ServeFile(w, r, path)
}

// DeleteDocument handles removal of a document
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	docID, err := h.pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), user.ID, docID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, schemas.MessageResponse{Message: "document deleted successfully"})
}
