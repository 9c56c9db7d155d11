package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh-token database operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session token hash.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a session by its token hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes a single session.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUser removes all sessions for a user (logout everywhere).
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes expired sessions and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
