package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"spotlight/cmd/app"
	"spotlight/internal/config"
	"spotlight/internal/database"
	handlers "spotlight/internal/handler"
	"spotlight/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.Clerk.PublishableKey == "" {
		log.Fatal("CLERK_PUBLISHABLE_KEY is not set in the .env file")
	}
	if cfg.Clerk.SessionSecret == "" {
		log.Fatal("SESSION_SECRET_KEY is not set in the .env file")
	}

	db, repo, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/clerk-webhook", handler.ClerkWebhook).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/posts", handler.GetUserPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/follow", handler.ToggleFollow).Methods(http.MethodPost)

	router.HandleFunc("/api/posts", handler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/like", handler.ToggleLike).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/bookmark", handler.ToggleBookmark).Methods(http.MethodPost)

	router.HandleFunc("/api/bookmarks", handler.GetBookmarks).Methods(http.MethodGet)
	router.HandleFunc("/api/notifications", handler.GetNotifications).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	server := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
