package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	posts, err := h.PostService.GetFeed(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, "Post image is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		writeError(w, "Image is too large", http.StatusBadRequest)
		return
	}

	caption := r.FormValue("caption")

	post, err := h.PostService.CreatePost(r.Context(), caption, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["id"]
	if userID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.GetPostsByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Post deleted"}, http.StatusOK)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	liked, err := h.LikeService.ToggleLike(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"liked": liked}, http.StatusOK)
}

func (h *Handlers) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	bookmarked, err := h.BookmarkService.ToggleBookmark(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"bookmarked": bookmarked}, http.StatusOK)
}

func (h *Handlers) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.BookmarkService.GetBookmarkedPosts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}
