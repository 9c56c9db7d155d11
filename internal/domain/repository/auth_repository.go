package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication record is not found.
	ErrAuthNotFound = errors.New("authentication not found")
	// ErrDuplicateAuth is returned when a credential already exists for the provider.
	ErrDuplicateAuth = errors.New("authentication already exists")
)

// AuthRepository defines the interface for authentication-related database operations.
type AuthRepository interface {
	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-side user ID.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
