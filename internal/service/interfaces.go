package service

import (
	"context"
	"encoding/json"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
)

// AuthService defines methods for account and session operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID string) (*dto.UserInfo, error)
	// ValidateSession returns the user id owning a live session token
	ValidateSession(ctx context.Context, token string) (string, error)
}

// FavoritesService defines methods for a user's saved places
type FavoritesService interface {
	// AddFavorite returns false when the place is already saved
	AddFavorite(ctx context.Context, userID string, place domain.Place) (bool, error)
	// RemoveFavorite returns false when there was nothing to remove
	RemoveFavorite(ctx context.Context, userID, placeID string) (bool, error)
	ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error)
	IsFavorite(ctx context.Context, userID, placeID string) (bool, error)
}

// SearchService defines the business search flow
type SearchService interface {
	Search(ctx context.Context, query string, lat, lng float64) ([]domain.Place, error)
	GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error)
}

// PlaceSearcher is the places provider
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query string, lat, lng float64) ([]domain.Place, error)
	GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error)
}

// BusinessFilter narrows search results to independent businesses. It never fails.
type BusinessFilter interface {
	FilterSmallBusinesses(ctx context.Context, places []domain.Place, query string) []domain.Place
}

// PlaceDetailsCache stores raw place details payloads
type PlaceDetailsCache interface {
	Get(ctx context.Context, placeID string) (json.RawMessage, bool, error)
	Set(ctx context.Context, placeID string, payload json.RawMessage) error
}
