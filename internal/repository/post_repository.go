package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"spotlight/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and bumps the author's denormalized posts counter
// in the same transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (post_id, user_id, image_url, storage_id, caption, likes, comments, created_at)
		VALUES (:post_id, :user_id, :image_url, :storage_id, :caption, :likes, :comments, :created_at)
	`

	_, err = tx.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET posts = posts + 1 WHERE user_id = $1`, post.UserID)
	if err != nil {
		return fmt.Errorf("failed to update posts counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetFeed(ctx context.Context, limit, offset int) ([]models.FeedPost, error) {
	query := `
		SELECT p.*, u.username AS author_username, u.image AS author_image
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.FeedPost
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE user_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user posts: %w", err)
	}

	return posts, nil
}

// Delete removes the post together with its dependent rows and decrements the
// author's posts counter. Only the owning user may delete.
func (r *postRepository) Delete(ctx context.Context, postID, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM notifications WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post notifications: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post bookmarks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET posts = posts - 1 WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to update posts counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
