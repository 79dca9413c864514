// Package schemas holds the request and response payloads of the REST API.
// Field constraints are declared as validator tags and checked at the handler
// boundary.
package schemas

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserUpdateRequest is the body of PUT /auth/me. Nil fields stay unchanged.
type UserUpdateRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
