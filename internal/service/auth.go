package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/dmikh/job-tracker/internal/auth"
	"github.com/dmikh/job-tracker/internal/models"
	"github.com/dmikh/job-tracker/internal/repository"
	"github.com/dmikh/job-tracker/internal/schemas"
)

// Register creates a new user with a hashed password. Duplicate email or
// username yields a Conflict naming the colliding field.
func (s *Service) Register(ctx context.Context, req *schemas.RegisterRequest) (*models.User, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("email already registered")
	}

	exists, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("username already taken")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hashed,
		IsActive:     true,
		IsSuperuser:  false,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Backstop for a concurrent registration racing past the checks above
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email or username already registered")
		}
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a signed token. Unknown email, wrong
// password and inactive account all produce the same generic failure.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	invalid := apperrors.Unauthorized("incorrect email or password")

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", invalid
		}
		return "", err
	}

	if !user.IsActive {
		return "", invalid
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", invalid
	}

	token, err := auth.GenerateToken(user.Email, user.ID, []byte(s.config.JWTSecret), s.config.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

// CurrentUser resolves a bearer token to an active user. The user row is read
// fresh on every call, so deactivation takes effect before token expiry.
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, []byte(s.config.JWTSecret))
	if err != nil {
		return nil, apperrors.Unauthorized("could not validate credentials")
	}

	if claims.Subject == "" {
		return nil, apperrors.Unauthorized("could not validate credentials")
	}

	user, err := s.repo.FindUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("could not validate credentials")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.Unauthorized("could not validate credentials")
	}

	return user, nil
}

// UpdateProfile applies the provided fields to the current user. A new
// password is re-hashed; nil fields stay untouched.
func (s *Service) UpdateProfile(ctx context.Context, user *models.User, req *schemas.UserUpdateRequest) (*models.User, error) {
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User profile updated: %s", user.Email)
	return user, nil
}

// ListUsers returns every user. Admin-only; the privilege check happens in the
// middleware.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}
