package service

import (
	"context"

	"spotlight/internal/models"
	"spotlight/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, content string) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	user, err := CurrentUser(ctx, s.userRepo)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  user.UserID,
		PostID:  postID,
		Content: content,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID)
}
