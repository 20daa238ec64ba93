package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spotlight/internal/config"
	"spotlight/internal/models"
	"spotlight/internal/repository"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Bio      string `json:"bio"`
	Email    string `json:"email" validate:"required,email"`
	ClerkID  string `json:"clerkId" validate:"required"`
}

type UserService interface {
	UpsertUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// UpsertUser creates a user record keyed by the external identity id. A second
// call with the same id is a no-op returning the stored record, which keeps
// webhook redelivery from producing duplicate accounts.
func (s *userService) UpsertUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	existing, err := s.userRepo.GetUserByClerkID(ctx, req.ClerkID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Fullname:  req.Fullname,
		Email:     req.Email,
		Bio:       sql.NullString{String: req.Bio, Valid: req.Bio != ""},
		Image:     req.Image,
		ClerkID:   req.ClerkID,
		Followers: 0,
		Following: 0,
		Posts:     0,
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *userService) CurrentUser(ctx context.Context) (*models.User, error) {
	return CurrentUser(ctx, s.userRepo)
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
