package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"billun/internal/auth"
	"billun/internal/cache"
	apperrors "billun/internal/errors"
	"billun/internal/logger"
	"billun/internal/model"
	"billun/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Register(ctx context.Context, in UserInput) (*model.User, error)
	CreateAdmin(ctx context.Context, in UserInput) (*model.User, error)
	CurrentUser(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Login verifies the credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		logger.FromContext(ctx).WithField("userID", user.ID).Info("login rejected")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// Register creates an account. Role defaults to "user".
func (s *authService) Register(ctx context.Context, in UserInput) (*model.User, error) {
	role := model.RoleUser
	if in.Role != nil && strings.TrimSpace(*in.Role) != "" {
		role = *in.Role
	}
	return createUser(ctx, s.userRepo, in, role)
}

// CreateAdmin creates an account with the admin role whatever the payload says.
func (s *authService) CreateAdmin(ctx context.Context, in UserInput) (*model.User, error) {
	return createUser(ctx, s.userRepo, in, model.RoleAdmin)
}

// CurrentUser resolves the token subject to a stored user.
func (s *authService) CurrentUser(ctx context.Context, email string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, userEmailCacheKey(email), &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	_ = s.cache.SetJSON(ctx, userEmailCacheKey(email), user, userCacheTTL)
	return user, nil
}
