package service

import (
	"context"

	"spotlight/internal/repository"
)

type LikeService interface {
	ToggleLike(ctx context.Context, postID string) (bool, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
}

func NewLikeService(likeRepo repository.LikeRepository, userRepo repository.UserRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		userRepo: userRepo,
	}
}

// ToggleLike flips the acting user's like on the post and returns the new
// state: true when the post is now liked, false when it was unliked.
func (s *likeService) ToggleLike(ctx context.Context, postID string) (bool, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return false, err
	}

	return s.likeRepo.Toggle(ctx, user.UserID, postID)
}
