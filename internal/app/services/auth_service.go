package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/pkg/apperrors"
	"github.com/mams/backend/internal/pkg/auth"
	"github.com/mams/backend/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// userStore is the credential persistence the auth service depends on
type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users      userStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users userStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		users:      users,
		jwtService: jwtService,
	}
}

// Register hashes the password and stores a new user. Fails if the email
// is already registered; no row is written in that case.
func (s *authServiceImpl) Register(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return apperrors.NewValidationError("missing email or password")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking existing user: %w", err)
	}
	if exists {
		return apperrors.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.users.CreateUser(ctx, &models.User{Email: email, Password: hash}); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("User registered")
	return nil
}

// Login verifies the credentials and issues a signed token
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}
