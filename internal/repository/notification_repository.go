package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"spotlight/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (notification_id, receiver_id, sender_id, type, post_id, comment_id, created_at)
		VALUES (:notification_id, :receiver_id, :sender_id, :type, :post_id, :comment_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) GetByReceiverID(ctx context.Context, receiverID string) ([]models.Notification, error) {
	query := `SELECT * FROM notifications WHERE receiver_id = $1 ORDER BY created_at DESC`

	var notifications []models.Notification
	err := r.db.SelectContext(ctx, &notifications, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}
