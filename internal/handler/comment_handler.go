package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required,max=2000"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), postID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.GetComments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comments, http.StatusOK)
}
