package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.UserService.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["id"]
	if userID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Public profile, without the provider join key.
	response := map[string]interface{}{
		"userId":    user.UserID,
		"username":  user.Username,
		"fullname":  user.Fullname,
		"bio":       user.Bio.String,
		"image":     user.Image,
		"followers": user.Followers,
		"following": user.Following,
		"posts":     user.Posts,
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	targetID := mux.Vars(r)["id"]
	if targetID == "" {
		writeError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	following, err := h.FollowService.ToggleFollow(r.Context(), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"following": following}, http.StatusOK)
}
