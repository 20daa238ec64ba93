package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spotlight/internal/config"
	handlers "spotlight/internal/handler"
	"spotlight/internal/repository"
	"spotlight/internal/service"
)

func TestToggleLikeHandler(t *testing.T) {
	tests := []struct {
		name           string
		postID         string
		mockSetup      func(*MockLikeService)
		expectedStatus int
		expectedLiked  *bool
	}{
		{
			name:   "first toggle likes the post",
			postID: "post_1",
			mockSetup: func(likes *MockLikeService) {
				likes.On("ToggleLike", mock.Anything, "post_1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLiked:  boolPtr(true),
		},
		{
			name:   "second toggle unlikes the post",
			postID: "post_1",
			mockSetup: func(likes *MockLikeService) {
				likes.On("ToggleLike", mock.Anything, "post_1").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLiked:  boolPtr(false),
		},
		{
			name:   "no authenticated user",
			postID: "post_1",
			mockSetup: func(likes *MockLikeService) {
				likes.On("ToggleLike", mock.Anything, "post_1").
					Return(false, service.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "identity without a user record",
			postID: "post_1",
			mockSetup: func(likes *MockLikeService) {
				likes.On("ToggleLike", mock.Anything, "post_1").
					Return(false, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLikeService := new(MockLikeService)
			tt.mockSetup(mockLikeService)

			handler := &handlers.Handlers{
				LikeService: mockLikeService,
				Cfg:         &config.Config{},
				Validate:    validator.New(),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/posts/"+tt.postID+"/like", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.postID})

			rr := httptest.NewRecorder()
			handler.ToggleLike(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedLiked != nil {
				var body map[string]bool
				err := json.Unmarshal(rr.Body.Bytes(), &body)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedLiked, body["liked"])
			}

			mockLikeService.AssertExpectations(t)
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
