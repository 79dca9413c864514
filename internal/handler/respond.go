package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps application errors to their HTTP status; anything
// unrecognized becomes a logged 500 with a generic body
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		h.writeJSON(w, appErr.Status, errorResponse{Detail: appErr.Message})
		return
	}
	h.log.Errorf("Internal error: %v", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
}

// decodeAndValidate decodes a JSON body into dst and runs validator tags.
// Returns false after writing the error response.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, apperrors.BadRequest("invalid request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.writeError(w, apperrors.BadRequest(fmt.Sprintf("invalid field %s: %s rule failed", verrs[0].Field(), verrs[0].Tag())))
			return false
		}
		h.writeError(w, apperrors.BadRequest("invalid request body"))
		return false
	}
	return true
}
