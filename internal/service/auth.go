package service

import (
	"context"
	"errors"

	"spotlight/internal/middleware"
	"spotlight/internal/models"
	"spotlight/internal/repository"
)

// ErrUnauthenticated is returned when the request carries no caller identity.
var ErrUnauthenticated = errors.New("no authenticated user")

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")

// CurrentUser resolves the acting user from the request context. The session
// middleware stores the identity provider's subject claim there; the matching
// user record must have been created by the sign-up webhook.
func CurrentUser(ctx context.Context, users repository.UserRepository) (*models.User, error) {
	clerkID, ok := middleware.ClerkIDFromContext(ctx)
	if !ok || clerkID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := users.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
