package dto

import "github.com/prperemyshlev/localmaps-api/internal/domain"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Location is a WGS84 coordinate pair
type Location struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// SearchRequest represents a business search. Query blankness is checked by
// the search service so the client gets the same message for "" and "   ".
type SearchRequest struct {
	Query    string    `json:"query"`
	Location *Location `json:"location" binding:"required"`
}

// FavoriteRequest carries the provider place object to save
type FavoriteRequest struct {
	PlaceData domain.Place `json:"place_data" binding:"required"`
}
