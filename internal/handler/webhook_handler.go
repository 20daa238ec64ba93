package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	svix "github.com/svix/svix-webhooks/go"

	"spotlight/internal/service"
)

type clerkEmailAddress struct {
	EmailAddress string `json:"email_address" validate:"required,email"`
}

type clerkUserData struct {
	ID             string              `json:"id" validate:"required"`
	EmailAddresses []clerkEmailAddress `json:"email_addresses" validate:"required,min=1,dive"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	ImageURL       string              `json:"image_url" validate:"required"`
}

type clerkEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ClerkWebhook receives signed events from the identity provider. A verified
// user.created event creates the matching user record; every other event type
// is acknowledged and ignored.
func (h *Handlers) ClerkWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.Cfg.Clerk.WebhookSecret == "" {
		log.Println("CLERK_WEBHOOK_SECRET is not configured")
		writeError(w, "Webhook secret not configured", http.StatusInternalServerError)
		return
	}

	svixID := r.Header.Get("svix-id")
	svixSignature := r.Header.Get("svix-signature")
	svixTimestamp := r.Header.Get("svix-timestamp")

	if svixID == "" || svixSignature == "" || svixTimestamp == "" {
		writeError(w, "Missing svix headers", http.StatusBadRequest)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	wh, err := svix.NewWebhook(h.Cfg.Clerk.WebhookSecret)
	if err != nil {
		log.Printf("Failed to initialize webhook verifier: %v", err)
		writeError(w, "Webhook secret not configured", http.StatusInternalServerError)
		return
	}

	if err := wh.Verify(payload, r.Header); err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		writeError(w, "Signature verification failed", http.StatusBadRequest)
		return
	}

	var event clerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		writeError(w, "Invalid event payload", http.StatusBadRequest)
		return
	}

	if event.Type == "user.created" {
		var data clerkUserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			writeError(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		if err := h.Validate.Struct(data); err != nil {
			writeError(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		email := data.EmailAddresses[0].EmailAddress
		fullname := strings.TrimSpace(data.FirstName + " " + data.LastName)

		_, err := h.UserService.UpsertUser(r.Context(), service.CreateUserRequest{
			Username: strings.Split(email, "@")[0],
			Fullname: fullname,
			Image:    data.ImageURL,
			Email:    email,
			ClerkID:  data.ID,
		})
		if err != nil {
			log.Printf("Failed to create user from webhook: %v", err)
			writeError(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		log.Printf("User created from webhook: %s", email)
	}

	log.Printf("Processed Clerk webhook event: id=%s type=%s", svixID, event.Type)
	writeSuccess(w, map[string]string{"message": "Webhook processed successfully"}, http.StatusOK)
}
