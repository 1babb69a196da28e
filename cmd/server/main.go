package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "campushub-backend/internal/api/http"
	"campushub-backend/internal/config"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository/firebasedb"
	"campushub-backend/internal/security"
	"campushub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CampusHub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "database_url", cfg.Firebase.DatabaseURL)

	// Initialize Repositories
	ctx := context.Background()
	store, err := firebasedb.NewStore(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to Firebase", "error", err)
		log.Fatalf("Failed to connect to Firebase: %v", err)
	}
	logger.Info("Firebase connection established")

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Services
	dispatcher := service.NewDispatcher(store.NotificationRepository, store.UserRepository, emailSvc)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	clubSvc := service.NewClubService(store.ClubRepository, store.EventRepository)
	membershipSvc := service.NewMembershipService(store.ClubRepository, dispatcher)
	ticketSvc := service.NewTicketService(store.TicketRepository, store.EventRepository, dispatcher)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	resourceSvc := service.NewResourceService(store.ResourceRepository, dispatcher)

	// Initialize HTTP handlers and routes
	handlers := httpapi.NewHandlers(authSvc, clubSvc, membershipSvc, ticketSvc, noteSvc, resourceSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
