// Package firebasedb implements the repository interfaces on top of the
// Firebase Realtime Database. Paths mirror the web client's layout:
// tickets/{id}, clubs/{id} (members, joinRequests and posts nested),
// events/{id}, users/{id}, notifications/{global,users/{uid}}/{id}.
package firebasedb

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"campushub-backend/internal/repository"
)

type Store struct {
	client *db.Client
	repository.TicketRepository
	repository.ClubRepository
	repository.UserRepository
	repository.EventRepository
	repository.NotificationRepository
	repository.ResourceRepository
}

// NewStore connects to the Realtime Database and wires all repositories.
// credentialsFile may be empty, in which case application default
// credentials are used (the usual setup on GCP).
func NewStore(ctx context.Context, credentialsFile, databaseURL string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	return &Store{
		client:                 client,
		TicketRepository:       NewTicketRepository(client),
		ClubRepository:         NewClubRepository(client),
		UserRepository:         NewUserRepository(client),
		EventRepository:        NewEventRepository(client),
		NotificationRepository: NewNotificationRepository(client),
		ResourceRepository:     NewResourceRepository(client),
	}, nil
}
