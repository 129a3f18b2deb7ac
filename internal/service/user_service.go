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
	"billun/internal/mailer"
	"billun/internal/model"
	"billun/internal/optional"
	"billun/internal/repository"
)

const tempPasswordLength = 12

// UserInput carries the user fields of a request. Nil fields were not supplied.
// The profile fields are nullable: an explicit null clears them on update.
type UserInput struct {
	Email     *string
	Password  *string
	Role      *string
	Societe   optional.Value[string]
	Prenom    optional.Value[string]
	Nom       optional.Value[string]
	Telephone optional.Value[string]
}

// UserService exposes user account operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, in UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	cache  *cache.Client
	mailer mailer.Sender
}

// NewUserService builds a UserService with repository, cache and mailer.
func NewUserService(repo repository.UserRepository, cache *cache.Client, mailer mailer.Sender) UserService {
	return &userService{repo: repo, cache: cache, mailer: mailer}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, userIDCacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	_ = s.cache.SetJSON(ctx, userIDCacheKey(id), user, userCacheTTL)
	return user, nil
}

// CreateUser creates an account. Without a password a temporary one is generated
// and mailed to the new user.
func (s *userService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	generated := in.Password == nil
	password := ""
	if generated {
		temp, err := auth.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return nil, err
		}
		password = temp
		in.Password = &password
	} else {
		password = *in.Password
	}

	role := model.RoleUser
	if in.Role != nil && strings.TrimSpace(*in.Role) != "" {
		role = *in.Role
	}

	user, err := createUser(ctx, s.repo, in, role)
	if err != nil {
		return nil, err
	}

	if generated {
		if err := s.mailer.SendTempPassword(ctx, user.Email, password); err != nil {
			logger.FromContext(ctx).WithError(err).WithField("userID", user.ID).
				Warn("temporary password could not be mailed")
		}
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	verr := &apperrors.ValidationError{}
	rejectBlank(verr, "email", in.Email)
	rejectBlank(verr, "password", in.Password)
	if !verr.Empty() {
		return nil, verr
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	previousEmail := user.Email

	if in.Email != nil && *in.Email != user.Email {
		other, err := s.repo.FindByEmail(ctx, *in.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, apperrors.ErrEmailAlreadyRegistered
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	in.Societe.Apply(&user.Societe)
	in.Prenom.Apply(&user.Prenom)
	in.Nom.Apply(&user.Nom)
	in.Telephone.Apply(&user.Telephone)

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, userIDCacheKey(id), userEmailCacheKey(previousEmail), userEmailCacheKey(user.Email))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, userIDCacheKey(id), userEmailCacheKey(user.Email))
	return nil
}

// createUser validates in, rejects a taken email and stores the account with a hashed password.
func createUser(ctx context.Context, repo repository.UserRepository, in UserInput, role string) (*model.User, error) {
	verr := &apperrors.ValidationError{}
	email := requireText(verr, "email", in.Email)
	password := requireText(verr, "password", in.Password)
	if !verr.Empty() {
		return nil, verr
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		Societe:        in.Societe.Ptr(),
		Prenom:         in.Prenom.Ptr(),
		Nom:            in.Nom.Ptr(),
		Telephone:      in.Telephone.Ptr(),
	}
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
