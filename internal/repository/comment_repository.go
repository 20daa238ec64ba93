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

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment, bumps the post's comments counter and notifies
// the post owner, all in one transaction.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	err = tx.GetContext(ctx, &ownerID, `SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`, comment.PostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock post: %w", err)
	}

	query := `
		INSERT INTO comments (comment_id, user_id, post_id, content, created_at)
		VALUES (:comment_id, :user_id, :post_id, :content, :created_at)
	`

	_, err = tx.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE posts SET comments = comments + 1 WHERE post_id = $1`, comment.PostID)
	if err != nil {
		return fmt.Errorf("failed to update comments counter: %w", err)
	}

	if ownerID != comment.UserID {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notifications (notification_id, receiver_id, sender_id, type, post_id, comment_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New().String(), ownerID, comment.UserID, models.NotificationComment,
			comment.PostID, comment.CommentID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}
