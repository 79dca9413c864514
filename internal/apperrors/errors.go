// Package apperrors defines the status-coded error values handlers translate
// into HTTP responses. Services return these; everything else is treated as an
// internal error.
package apperrors

import "net/http"

// Error is an application error carrying the HTTP status it maps to
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"detail"`
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized covers every credential failure: missing/invalid/expired token,
// unknown user, inactive user, wrong password. Collapsed into one category so
// responses never leak which check failed.
func Unauthorized(msg string) *Error {
	if msg == "" {
		msg = "not authenticated"
	}
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden means authenticated but lacking the required privilege
func Forbidden(msg string) *Error {
	if msg == "" {
		msg = "not enough permissions"
	}
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// NotFound covers absent entities and entities owned by someone else, so the
// existence of another user's resources is never confirmed
func NotFound(msg string) *Error {
	if msg == "" {
		msg = "resource not found"
	}
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Conflict means a unique field collided on creation
func Conflict(msg string) *Error {
	if msg == "" {
		msg = "resource already exists"
	}
	return &Error{Status: http.StatusConflict, Message: msg}
}

// BadRequest covers malformed input: invalid fields, disallowed file types,
// oversized uploads
func BadRequest(msg string) *Error {
	if msg == "" {
		msg = "bad request"
	}
	return &Error{Status: http.StatusBadRequest, Message: msg}
}
