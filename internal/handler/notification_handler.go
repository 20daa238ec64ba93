package handlers

import (
	"net/http"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.UserService.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	notifications, err := h.NotificationRepo.GetByReceiverID(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, notifications, http.StatusOK)
}
