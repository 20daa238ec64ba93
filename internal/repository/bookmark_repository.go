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

type bookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Toggle flips the bookmark for (userID, postID). Bookmarks carry no
// denormalized counter and produce no notification.
func (r *bookmarkRepository) Toggle(ctx context.Context, userID, postID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists string
	err = tx.GetContext(ctx, &exists, `SELECT post_id FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get post: %w", err)
	}

	var bookmarkID string
	err = tx.GetContext(ctx, &bookmarkID,
		`SELECT bookmark_id FROM bookmarks WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up bookmark: %w", err)
	}

	if bookmarkID != "" {
		_, err = tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE bookmark_id = $1`, bookmarkID)
		if err != nil {
			return false, fmt.Errorf("failed to delete bookmark: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookmarks (bookmark_id, user_id, post_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), userID, postID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

func (r *bookmarkRepository) GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT p.* FROM posts p
		JOIN bookmarks b ON b.post_id = p.post_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarked posts: %w", err)
	}

	return posts, nil
}
