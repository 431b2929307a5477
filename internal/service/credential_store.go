package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/internal/repository"
	"github.com/prperemyshlev/localmaps-api/internal/utils"
)

// CredentialStore owns users and their session tokens
type CredentialStore struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	hasher     utils.PasswordHasher
	sessionTTL time.Duration
	now        func() time.Time
}

func NewCredentialStore(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	hasher utils.PasswordHasher,
	sessionTTL time.Duration,
) *CredentialStore {
	return &CredentialStore{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		sessionTTL: sessionTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; used by tests to move past expiry
func (s *CredentialStore) WithClock(now func() time.Time) *CredentialStore {
	s.now = now
	return s
}

// CreateUser stores a new user with a hashed password
func (s *CredentialStore) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, fmt.Errorf("username or email already exists: %w", apperrors.ErrConflict)
		}
		return nil, err
	}

	return user, nil
}

// VerifyUser checks credentials. Unknown users and wrong passwords are not told apart.
func (s *CredentialStore) VerifyUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// CreateSession issues a new random token valid for the configured TTL
func (s *CredentialStore) CreateSession(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()
	session := &domain.Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return token, nil
}

// VerifySession returns the user id for a token whose expiry is still ahead
func (s *CredentialStore) VerifySession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrUnauthorized
	}

	session, err := s.sessions.GetActiveByToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("invalid or expired token: %w", apperrors.ErrUnauthorized)
		}
		return "", err
	}

	return session.UserID, nil
}

// DeleteSession is idempotent
func (s *CredentialStore) DeleteSession(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

// GetUser loads the public user record
func (s *CredentialStore) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
