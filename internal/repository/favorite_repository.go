package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/pkg/database"
)

// favoriteRepository implements FavoriteRepository interface
type favoriteRepository struct {
	db *database.Postgres
}

// NewFavoriteRepository creates a new favorites repository
func NewFavoriteRepository(db *database.Postgres) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create saves a favorite. A second insert for the same (user_id, place_id)
// is rejected by the unique constraint and reported as ErrDuplicateFavorite.
func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, place_id, place_name, place_address, place_rating, place_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(favorite.PlaceData)
	if err != nil {
		return fmt.Errorf("failed to encode place data: %w", err)
	}

	_, err = r.db.DB.ExecContext(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.PlaceID,
		favorite.PlaceName,
		favorite.PlaceAddress,
		favorite.PlaceRating,
		string(payload),
		favorite.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("place %s: %w", favorite.PlaceID, ErrDuplicateFavorite)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

// Delete removes the favorite and reports whether a row was deleted
func (r *favoriteRepository) Delete(ctx context.Context, userID, placeID string) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ListByUserID returns the user's favorites, newest first
func (r *favoriteRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	query := `
		SELECT id, user_id, place_id, place_name, place_address, place_rating, place_data, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites by user id: %w", err)
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		fav := &domain.Favorite{}
		var address sql.NullString
		var rating sql.NullFloat64
		var payload []byte

		err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.PlaceID,
			&fav.PlaceName,
			&address,
			&rating,
			&payload,
			&fav.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		if address.Valid {
			fav.PlaceAddress = &address.String
		}
		if rating.Valid {
			fav.PlaceRating = &rating.Float64
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &fav.PlaceData); err != nil {
				return nil, fmt.Errorf("failed to decode place data for %s: %w", fav.PlaceID, err)
			}
		}

		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// Exists reports whether the user saved the place
func (r *favoriteRepository) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND place_id = $2)`

	var exists bool
	if err := r.db.DB.QueryRowContext(ctx, query, userID, placeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}
