package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_Toggle(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLikeRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	ownerID := uuid.New().String()
	postID := uuid.New().String()

	t.Run("like inserts row, bumps counter and notifies owner", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`).
			WithArgs(postID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerID))
		mock.ExpectQuery(`SELECT like_id FROM likes WHERE user_id = $1 AND post_id = $2`).
			WithArgs(userID, postID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(`INSERT INTO likes (like_id, user_id, post_id, created_at) VALUES ($1, $2, $3, $4)`).
			WithArgs(sqlmock.AnyArg(), userID, postID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE posts SET likes = likes + 1 WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`
			INSERT INTO notifications (notification_id, receiver_id, sender_id, type, post_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`).
			WithArgs(sqlmock.AnyArg(), ownerID, userID, "like", postID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		liked, err := repo.Toggle(ctx, userID, postID)

		require.NoError(t, err)
		assert.True(t, liked)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("liking own post skips the notification", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`).
			WithArgs(postID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID))
		mock.ExpectQuery(`SELECT like_id FROM likes WHERE user_id = $1 AND post_id = $2`).
			WithArgs(userID, postID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(`INSERT INTO likes (like_id, user_id, post_id, created_at) VALUES ($1, $2, $3, $4)`).
			WithArgs(sqlmock.AnyArg(), userID, postID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE posts SET likes = likes + 1 WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		liked, err := repo.Toggle(ctx, userID, postID)

		require.NoError(t, err)
		assert.True(t, liked)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("unlike deletes row and decrements counter", func(t *testing.T) {
		likeID := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`).
			WithArgs(postID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerID))
		mock.ExpectQuery(`SELECT like_id FROM likes WHERE user_id = $1 AND post_id = $2`).
			WithArgs(userID, postID).
			WillReturnRows(sqlmock.NewRows([]string{"like_id"}).AddRow(likeID))
		mock.ExpectExec(`DELETE FROM likes WHERE like_id = $1`).
			WithArgs(likeID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE posts SET likes = likes - 1 WHERE post_id = $1`).
			WithArgs(postID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		liked, err := repo.Toggle(ctx, userID, postID)

		require.NoError(t, err)
		assert.False(t, liked)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("post not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT user_id FROM posts WHERE post_id = $1 FOR UPDATE`).
			WithArgs(postID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		liked, err := repo.Toggle(ctx, userID, postID)

		assert.False(t, liked)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLikeRepository_GetByUserAndPost(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLikeRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	postID := uuid.New().String()

	t.Run("no like for the pair", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM likes WHERE user_id = $1 AND post_id = $2`).
			WithArgs(userID, postID).
			WillReturnError(sql.ErrNoRows)

		like, err := repo.GetByUserAndPost(ctx, userID, postID)

		assert.Nil(t, like)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
