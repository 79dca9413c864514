package handler

import (
	"net/http"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/middleware"
	"github.com/dmikh/job-tracker/internal/schemas"
)

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req schemas.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.svc.Register(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and token issuance
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req schemas.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, schemas.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user's own record
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// UpdateMe updates the authenticated user's profile
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.Unauthorized(""))
		return
	}

	var req schemas.UserUpdateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

// ListUsers returns all users. Reached only through the admin guard.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}
