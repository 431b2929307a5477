package service

import (
	"context"

	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"go.uber.org/zap"
)

// authService implements AuthService interface
type authService struct {
	store  *CredentialStore
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(store *CredentialStore, logger *zap.Logger) AuthService {
	return &authService{
		store:  store,
		logger: logger,
	}
}

// Register creates the user and logs them in. Username and email are stored
// as submitted.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.store.CreateUser(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.store.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserInfo(user),
	}, nil
}

// Login verifies credentials and opens a new session
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.VerifyUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.store.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserInfo(user),
	}, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// GetUser gets user information
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := dto.NewUserInfo(user)
	return &info, nil
}

// ValidateSession validates a bearer token
func (s *authService) ValidateSession(ctx context.Context, token string) (string, error) {
	return s.store.VerifySession(ctx, token)
}
