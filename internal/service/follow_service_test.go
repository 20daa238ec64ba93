package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spotlight/internal/middleware"
	"spotlight/internal/models"
)

type mockFollowRepository struct {
	mock.Mock
}

func (m *mockFollowRepository) Toggle(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func TestFollowService_ToggleFollow(t *testing.T) {
	actor := &models.User{UserID: "u1", ClerkID: "ext_1"}
	ctx := middleware.ContextWithClerkID(context.Background(), "ext_1")

	t.Run("follows another user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetUserByClerkID", mock.Anything, "ext_1").Return(actor, nil)

		followRepo := new(mockFollowRepository)
		followRepo.On("Toggle", mock.Anything, "u1", "u2").Return(true, nil)

		svc := NewFollowService(followRepo, userRepo)

		following, err := svc.ToggleFollow(ctx, "u2")

		require.NoError(t, err)
		assert.True(t, following)
		followRepo.AssertExpectations(t)
	})

	t.Run("following yourself is rejected", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetUserByClerkID", mock.Anything, "ext_1").Return(actor, nil)

		followRepo := new(mockFollowRepository)

		svc := NewFollowService(followRepo, userRepo)

		following, err := svc.ToggleFollow(ctx, "u1")

		assert.False(t, following)
		assert.ErrorIs(t, err, ErrSelfFollow)
		followRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		followRepo := new(mockFollowRepository)

		svc := NewFollowService(followRepo, userRepo)

		following, err := svc.ToggleFollow(context.Background(), "u2")

		assert.False(t, following)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
