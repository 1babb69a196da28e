package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type resourceRepository struct {
	client *db.Client
}

func NewResourceRepository(client *db.Client) repository.ResourceRepository {
	return &resourceRepository{client: client}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	if err := res.Validate(); err != nil {
		return fmt.Errorf("refusing to store malformed resource: %w", err)
	}
	path := "resources/" + res.ID
	logger.StoreCall("SET", path)
	err := r.client.NewRef(path).Set(ctx, res)
	logger.StoreResult("SET", path, err)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	var res domain.Resource
	path := "resources/" + id
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &res)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", id, err)
	}
	if res.ID == "" {
		return nil, repository.ErrNotFound
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("malformed resource in store: %w", err)
	}
	return &res, nil
}

func (r *resourceRepository) UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) error {
	path := "resources/" + id
	logger.StoreCall("UPDATE", path, "status", status)
	err := r.client.NewRef(path).Update(ctx, map[string]interface{}{"status": string(status)})
	logger.StoreResult("UPDATE", path, err)
	if err != nil {
		return fmt.Errorf("failed to update resource %s: %w", id, err)
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	path := "resources/" + id
	logger.StoreCall("DELETE", path)
	err := r.client.NewRef(path).Delete(ctx)
	logger.StoreResult("DELETE", path, err)
	if err != nil {
		return fmt.Errorf("failed to delete resource %s: %w", id, err)
	}
	return nil
}

func (r *resourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	var nodes map[string]domain.Resource
	logger.StoreCall("GET", "resources")
	err := r.client.NewRef("resources").Get(ctx, &nodes)
	logger.StoreResult("GET", "resources", err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to scan resources: %w", err)
	}

	resources := make([]domain.Resource, 0, len(nodes))
	for key, res := range nodes {
		if res.ID == "" {
			res.ID = key
		}
		if err := res.Validate(); err != nil {
			return nil, fmt.Errorf("malformed resource in store: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}
