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

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like for (userID, postID) and returns the new state.
// The post row is locked FOR UPDATE so concurrent toggles on the same post
// serialize and the likes counter cannot lose updates.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	err = tx.GetContext(ctx, &ownerID, `SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to lock post: %w", err)
	}

	var likeID string
	err = tx.GetContext(ctx, &likeID, `SELECT like_id FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up like: %w", err)
	}

	if likeID != "" {
		_, err = tx.ExecContext(ctx, `DELETE FROM likes WHERE like_id = $1`, likeID)
		if err != nil {
			return false, fmt.Errorf("failed to delete like: %w", err)
		}

		_, err = tx.ExecContext(ctx, `UPDATE posts SET likes = likes - 1 WHERE post_id = $1`, postID)
		if err != nil {
			return false, fmt.Errorf("failed to update likes counter: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO likes (like_id, user_id, post_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), userID, postID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE posts SET likes = likes + 1 WHERE post_id = $1`, postID)
	if err != nil {
		return false, fmt.Errorf("failed to update likes counter: %w", err)
	}

	// Liking your own post does not notify anyone.
	if ownerID != userID {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notifications (notification_id, receiver_id, sender_id, type, post_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), ownerID, userID, models.NotificationLike, postID, time.Now())
		if err != nil {
			return false, fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

func (r *likeRepository) GetByUserAndPost(ctx context.Context, userID, postID string) (*models.Like, error) {
	var like models.Like

	query := `SELECT * FROM likes WHERE user_id = $1 AND post_id = $2`

	err := r.db.GetContext(ctx, &like, query, userID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
