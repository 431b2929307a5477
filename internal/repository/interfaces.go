package repository

import (
	"context"
	"time"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionRepository defines methods for session token operations
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetActiveByToken returns the session only if it has not expired at now
	GetActiveByToken(ctx context.Context, token string, now time.Time) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// FavoriteRepository defines methods for saved places
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, userID, placeID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Exists(ctx context.Context, userID, placeID string) (bool, error)
}
