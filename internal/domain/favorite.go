package domain

import "time"

// Favorite is a place saved by a user. PlaceData keeps the provider payload as it was sent.
type Favorite struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	PlaceID      string    `json:"place_id" db:"place_id"`
	PlaceName    string    `json:"place_name" db:"place_name"`
	PlaceAddress *string   `json:"place_address" db:"place_address"`
	PlaceRating  *float64  `json:"place_rating" db:"place_rating"`
	PlaceData    Place     `json:"place_data" db:"place_data"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewFavorite extracts the indexed columns from a place payload
func NewFavorite(userID string, place Place) *Favorite {
	fav := &Favorite{
		UserID:    userID,
		PlaceID:   place.ID(),
		PlaceName: place.Name(),
		PlaceData: place,
	}
	if addr := place.Address(); addr != "" {
		fav.PlaceAddress = &addr
	}
	if rating, ok := place.Rating(); ok {
		fav.PlaceRating = &rating
	}
	return fav
}
