package dto

import "github.com/prperemyshlev/localmaps-api/internal/domain"

// UserInfo represents user information in response
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type UserResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SearchResponse struct {
	Success bool           `json:"success"`
	Places  []domain.Place `json:"places"`
	Total   int            `json:"total"`
}

type FavoritesResponse struct {
	Success   bool               `json:"success"`
	Favorites []*domain.Favorite `json:"favorites"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// HealthResponse reports configuration and dependency status
type HealthResponse struct {
	Status                  string `json:"status"`
	Message                 string `json:"message"`
	GoogleMapsAPIConfigured bool   `json:"google_maps_api_configured"`
	GeminiAPIConfigured     bool   `json:"gemini_api_configured"`
	Database                string `json:"database"`
	Cache                   string `json:"cache"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
