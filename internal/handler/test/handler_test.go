package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"spotlight/internal/config"
	handlers "spotlight/internal/handler"
	"spotlight/internal/repository"
	"spotlight/internal/service"
)

func TestNewHandlers(t *testing.T) {
	mockUserService := new(MockUserService)
	mockLikeService := new(MockLikeService)
	mockCommentService := new(MockCommentService)
	mockFollowService := new(MockFollowService)
	mockNotificationRepo := new(MockNotificationRepository)
	cfg := &config.Config{}

	repo := &repository.Repository{
		Notification: mockNotificationRepo,
	}

	services := &service.Service{
		User:    mockUserService,
		Like:    mockLikeService,
		Comment: mockCommentService,
		Follow:  mockFollowService,
	}

	handler := handlers.NewHandlers(repo, services, cfg)

	assert.NotNil(t, handler.UserService)
	assert.NotNil(t, handler.LikeService)
	assert.NotNil(t, handler.CommentService)
	assert.NotNil(t, handler.FollowService)
	assert.NotNil(t, handler.NotificationRepo)
	assert.NotNil(t, handler.Cfg)
	assert.NotNil(t, handler.Validate)
}

func TestHomeAndHealthHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.HomeHandler(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handlers.HealthHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

// go test ./internal/handler/test/... -v
