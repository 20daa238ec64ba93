package service

import (
	"context"

	"spotlight/internal/repository"
)

type FollowService interface {
	ToggleFollow(ctx context.Context, targetUserID string) (bool, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// ToggleFollow flips the follow edge from the acting user to the target and
// returns true when the target is now followed.
func (s *followService) ToggleFollow(ctx context.Context, targetUserID string) (bool, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return false, err
	}

	if user.UserID == targetUserID {
		return false, ErrSelfFollow
	}

	return s.followRepo.Toggle(ctx, user.UserID, targetUserID)
}
