package service

import (
	"spotlight/internal/config"
	"spotlight/internal/repository"
	"spotlight/internal/storage"
)

type Service struct {
	User     UserService
	Post     PostService
	Like     LikeService
	Comment  CommentService
	Follow   FollowService
	Bookmark BookmarkService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:     NewUserService(rep.User, cfg),
		Post:     NewPostService(rep.Post, rep.User, storage, cfg),
		Like:     NewLikeService(rep.Like, rep.User),
		Comment:  NewCommentService(rep.Comment, rep.Post, rep.User),
		Follow:   NewFollowService(rep.Follow, rep.User),
		Bookmark: NewBookmarkService(rep.Bookmark, rep.User),
		Stats:    NewStatsService(rep.Stats),
	}
}
