package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"spotlight/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByClerkID(ctx context.Context, clerkID string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetFeed(ctx context.Context, limit, offset int) ([]models.FeedPost, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Post, error)
	Delete(ctx context.Context, postID, userID string) error
}

type LikeRepository interface {
	Toggle(ctx context.Context, userID, postID string) (bool, error)
	GetByUserAndPost(ctx context.Context, userID, postID string) (*models.Like, error)
	CountByPost(ctx context.Context, postID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type FollowRepository interface {
	Toggle(ctx context.Context, followerID, followingID string) (bool, error)
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
}

type BookmarkRepository interface {
	Toggle(ctx context.Context, userID, postID string) (bool, error)
	GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByReceiverID(ctx context.Context, receiverID string) ([]models.Notification, error)
}

type StatsRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Like         LikeRepository
	Comment      CommentRepository
	Follow       FollowRepository
	Bookmark     BookmarkRepository
	Notification NotificationRepository
	Stats        StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Like:         NewLikeRepository(db),
		Comment:      NewCommentRepository(db),
		Follow:       NewFollowRepository(db),
		Bookmark:     NewBookmarkRepository(db),
		Notification: NewNotificationRepository(db),
		Stats:        NewStatsRepository(db),
	}
}
