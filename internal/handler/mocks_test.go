package handler

import (
	"context"
	"encoding/json"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*dto.UserInfo)
	return user, args.Error(1)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockFavoritesService struct {
	mock.Mock
}

func (m *mockFavoritesService) AddFavorite(ctx context.Context, userID string, place domain.Place) (bool, error) {
	args := m.Called(ctx, userID, place)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoritesService) RemoveFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	args := m.Called(ctx, userID, placeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoritesService) ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]*domain.Favorite)
	return favs, args.Error(1)
}

func (m *mockFavoritesService) IsFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	args := m.Called(ctx, userID, placeID)
	return args.Bool(0), args.Error(1)
}

type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) Search(ctx context.Context, query string, lat, lng float64) ([]domain.Place, error) {
	args := m.Called(ctx, query, lat, lng)
	places, _ := args.Get(0).([]domain.Place)
	return places, args.Error(1)
}

func (m *mockSearchService) GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	args := m.Called(ctx, placeID)
	details, _ := args.Get(0).(json.RawMessage)
	return details, args.Error(1)
}
