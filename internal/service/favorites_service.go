package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/internal/repository"
)

type favoritesService struct {
	favorites repository.FavoriteRepository
}

func NewFavoritesService(favorites repository.FavoriteRepository) FavoritesService {
	return &favoritesService{favorites: favorites}
}

func (s *favoritesService) AddFavorite(ctx context.Context, userID string, place domain.Place) (bool, error) {
	if place.ID() == "" || place.Name() == "" {
		return false, fmt.Errorf("place_data must include place_id and name: %w", apperrors.ErrValidation)
	}

	err := s.favorites.Create(ctx, domain.NewFavorite(userID, place))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *favoritesService) RemoveFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	return s.favorites.Delete(ctx, userID, placeID)
}

func (s *favoritesService) ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.favorites.ListByUserID(ctx, userID)
}

func (s *favoritesService) IsFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	return s.favorites.Exists(ctx, userID, placeID)
}
