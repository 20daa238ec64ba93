package handlers

import (
	"github.com/go-playground/validator/v10"

	"spotlight/internal/config"
	"spotlight/internal/repository"
	"spotlight/internal/service"
)

type Handlers struct {
	UserService      service.UserService
	PostService      service.PostService
	LikeService      service.LikeService
	CommentService   service.CommentService
	FollowService    service.FollowService
	BookmarkService  service.BookmarkService
	StatsService     service.StatsService
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:      service.User,
		PostService:      service.Post,
		LikeService:      service.Like,
		CommentService:   service.Comment,
		FollowService:    service.Follow,
		BookmarkService:  service.Bookmark,
		StatsService:     service.Stats,
		UserRepo:         repo.User,
		NotificationRepo: repo.Notification,
		Cfg:              config,
		Validate:         validator.New(),
	}
}
