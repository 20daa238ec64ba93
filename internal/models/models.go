package models

import (
	"database/sql"
	"time"
)

type User struct {
	UserID    string         `json:"userId" db:"user_id"`
	Username  string         `json:"username" db:"username"`
	Fullname  string         `json:"fullname" db:"fullname"`
	Email     string         `json:"email" db:"email"`
	Bio       sql.NullString `json:"bio" db:"bio"`
	Image     string         `json:"image" db:"image"`
	Followers int            `json:"followers" db:"followers"`
	Following int            `json:"following" db:"following"`
	Posts     int            `json:"posts" db:"posts"`
	ClerkID   string         `json:"clerkId" db:"clerk_id"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string         `json:"postId" db:"post_id"`
	UserID    string         `json:"userId" db:"user_id"`
	ImageURL  string         `json:"imageUrl" db:"image_url"`
	StorageID string         `json:"storageId" db:"storage_id"`
	Caption   sql.NullString `json:"caption" db:"caption"`
	Likes     int            `json:"likes" db:"likes"`
	Comments  int            `json:"comments" db:"comments"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
}

type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Follow struct {
	FollowID    string    `json:"followId" db:"follow_id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Notification types match the actions that can produce one.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
)

type Notification struct {
	NotificationID string         `json:"notificationId" db:"notification_id"`
	ReceiverID     string         `json:"receiverId" db:"receiver_id"`
	SenderID       string         `json:"senderId" db:"sender_id"`
	Type           string         `json:"type" db:"type"`
	PostID         sql.NullString `json:"postId" db:"post_id"`
	CommentID      sql.NullString `json:"commentId" db:"comment_id"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

type Bookmark struct {
	BookmarkID string    `json:"bookmarkId" db:"bookmark_id"`
	UserID     string    `json:"userId" db:"user_id"`
	PostID     string    `json:"postId" db:"post_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FeedPost is a post joined with its author for feed responses.
type FeedPost struct {
	Post
	AuthorUsername string `json:"authorUsername" db:"author_username"`
	AuthorImage    string `json:"authorImage" db:"author_image"`
}
