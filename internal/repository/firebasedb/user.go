package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type userRepository struct {
	client *db.Client
}

func NewUserRepository(client *db.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	path := "users/" + id
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &u)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", id, err)
	}
	if u.ID == "" {
		return nil, repository.ErrNotFound
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("malformed user in store: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger.StoreCall("QUERY", "users", "email", email)
	results, err := r.client.NewRef("users").OrderByChild("email").EqualTo(email).LimitToFirst(1).GetOrdered(ctx)
	logger.StoreResult("QUERY", "users", err, "matches", len(results))
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if len(results) == 0 {
		return nil, repository.ErrNotFound
	}

	var u domain.User
	if err := results[0].Unmarshal(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user node: %w", err)
	}
	if u.ID == "" {
		u.ID = results[0].Key()
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("malformed user in store: %w", err)
	}
	return &u, nil
}
