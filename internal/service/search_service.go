package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"go.uber.org/zap"
)

type searchService struct {
	places PlaceSearcher
	filter BusinessFilter
	cache  PlaceDetailsCache
	logger *zap.Logger
}

// NewSearchService wires the places provider and the classifier. cache may be nil.
func NewSearchService(places PlaceSearcher, filter BusinessFilter, cache PlaceDetailsCache, logger *zap.Logger) SearchService {
	return &searchService{
		places: places,
		filter: filter,
		cache:  cache,
		logger: logger,
	}
}

// Search finds places for query near (lat, lng) and keeps the independent ones.
// The classifier is only consulted when the provider returned something.
func (s *searchService) Search(ctx context.Context, query string, lat, lng float64) ([]domain.Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty: %w", apperrors.ErrValidation)
	}

	places, err := s.places.SearchPlaces(ctx, query, lat, lng)
	if err != nil {
		return nil, &apperrors.UpstreamError{Err: err}
	}

	if len(places) == 0 {
		return []domain.Place{}, nil
	}

	return s.filter.FilterSmallBusinesses(ctx, places, query), nil
}

// GetPlaceDetails serves from cache when possible. Cache failures are logged
// and otherwise ignored.
func (s *searchService) GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, placeID)
		if err != nil {
			s.logger.Warn("place details cache read failed", zap.String("place_id", placeID), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	details, err := s.places.GetPlaceDetails(ctx, placeID)
	if err != nil {
		return nil, &apperrors.UpstreamError{Err: err}
	}

	if s.cache != nil && isCacheableDetails(details) {
		if err := s.cache.Set(ctx, placeID, details); err != nil {
			s.logger.Warn("place details cache write failed", zap.String("place_id", placeID), zap.Error(err))
		}
	}

	return details, nil
}

type detailsStatus struct {
	Status string `json:"status"`
}

// isCacheableDetails reports whether a details payload is a successful answer.
// Quota and transient provider errors arrive with HTTP 200 and must not be cached.
func isCacheableDetails(details json.RawMessage) bool {
	var payload detailsStatus
	if err := json.Unmarshal(details, &payload); err != nil {
		return false
	}
	return payload.Status == "OK"
}
