package service

import (
	"context"

	"spotlight/internal/models"
	"spotlight/internal/repository"
)

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, postID string) (bool, error)
	GetBookmarkedPosts(ctx context.Context) ([]models.Post, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	userRepo     repository.UserRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, userRepo repository.UserRepository) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		userRepo:     userRepo,
	}
}

func (s *bookmarkService) ToggleBookmark(ctx context.Context, postID string) (bool, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return false, err
	}

	return s.bookmarkRepo.Toggle(ctx, user.UserID, postID)
}

func (s *bookmarkService) GetBookmarkedPosts(ctx context.Context) ([]models.Post, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return nil, err
	}

	return s.bookmarkRepo.GetPostsByUserID(ctx, user.UserID)
}
