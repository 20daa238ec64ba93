package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"spotlight/internal/config"
	"spotlight/internal/models"
	"spotlight/internal/repository"
	"spotlight/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, caption, fileName string, file io.Reader, size int64) (*models.Post, error)
	GetFeed(ctx context.Context, limit, offset int) ([]models.FeedPost, error)
	GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *postService) CreatePost(ctx context.Context, caption, fileName string, file io.Reader, size int64) (*models.Post, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return nil, err
	}

	storageID, imageURL, err := s.storage.UploadImage(ctx, user.UserID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload post image: %w", err)
	}

	post := &models.Post{
		UserID:    user.UserID,
		ImageURL:  imageURL,
		StorageID: storageID,
		Caption:   sql.NullString{String: caption, Valid: caption != ""},
	}

	err = s.postRepo.Create(ctx, post)
	if err != nil {
		// The row insert failed, so drop the uploaded object again.
		s.storage.DeleteImage(ctx, storageID)
		return nil, err
	}

	return post, nil
}

func (s *postService) GetFeed(ctx context.Context, limit, offset int) ([]models.FeedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return s.postRepo.GetFeed(ctx, limit, offset)
}

func (s *postService) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

func (s *postService) DeletePost(ctx context.Context, postID string) error {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// Delete enforces ownership; a foreign post comes back as not found.
	err = s.postRepo.Delete(ctx, postID, user.UserID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteImage(ctx, post.StorageID); err != nil {
		fmt.Printf("Warning: failed to remove post image from storage: %v\n", err)
	}

	return nil
}
