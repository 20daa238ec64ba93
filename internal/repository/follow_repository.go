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

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Toggle flips the follow edge (followerID -> followingID) and keeps the
// followers/following counters on both users in sync. Both user rows are
// locked in a fixed order so two opposite toggles cannot deadlock.
func (r *followRepository) Toggle(ctx context.Context, followerID, followingID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	first, second := followerID, followingID
	if second < first {
		first, second = second, first
	}
	for _, id := range []string{first, second} {
		var locked string
		err = tx.GetContext(ctx, &locked, `SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return false, ErrNotFound
			}
			return false, fmt.Errorf("failed to lock user: %w", err)
		}
	}

	var followID string
	err = tx.GetContext(ctx, &followID,
		`SELECT follow_id FROM follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up follow: %w", err)
	}

	if followID != "" {
		_, err = tx.ExecContext(ctx, `DELETE FROM follows WHERE follow_id = $1`, followID)
		if err != nil {
			return false, fmt.Errorf("failed to delete follow: %w", err)
		}

		_, err = tx.ExecContext(ctx, `UPDATE users SET following = following - 1 WHERE user_id = $1`, followerID)
		if err != nil {
			return false, fmt.Errorf("failed to update following counter: %w", err)
		}

		_, err = tx.ExecContext(ctx, `UPDATE users SET followers = followers - 1 WHERE user_id = $1`, followingID)
		if err != nil {
			return false, fmt.Errorf("failed to update followers counter: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO follows (follow_id, follower_id, following_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), followerID, followingID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET following = following + 1 WHERE user_id = $1`, followerID)
	if err != nil {
		return false, fmt.Errorf("failed to update following counter: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET followers = followers + 1 WHERE user_id = $1`, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to update followers counter: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO notifications (notification_id, receiver_id, sender_id, type, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), followingID, followerID, models.NotificationFollow, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return count > 0, nil
}
