package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type eventRepository struct {
	client *db.Client
}

func NewEventRepository(client *db.Client) repository.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("refusing to store malformed event: %w", err)
	}
	path := "events/" + e.ID
	logger.StoreCall("SET", path)
	err := r.client.NewRef(path).Set(ctx, e)
	logger.StoreResult("SET", path, err)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	path := "events/" + id
	logger.StoreCall("GET", path)
	err := r.client.NewRef(path).Get(ctx, &e)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read event %s: %w", id, err)
	}
	if e.ID == "" {
		return nil, repository.ErrNotFound
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("malformed event in store: %w", err)
	}
	return &e, nil
}

func (r *eventRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Event, error) {
	logger.StoreCall("QUERY", "events", "club_id", clubID)
	results, err := r.client.NewRef("events").OrderByChild("clubId").EqualTo(clubID).GetOrdered(ctx)
	logger.StoreResult("QUERY", "events", err, "matches", len(results))
	if err != nil {
		return nil, fmt.Errorf("failed to query events by club: %w", err)
	}

	events := make([]domain.Event, 0, len(results))
	for _, node := range results {
		var e domain.Event
		if err := node.Unmarshal(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event node: %w", err)
		}
		if e.ID == "" {
			e.ID = node.Key()
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("malformed event in store: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var nodes map[string]domain.Event
	logger.StoreCall("GET", "events")
	err := r.client.NewRef("events").Get(ctx, &nodes)
	logger.StoreResult("GET", "events", err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	events := make([]domain.Event, 0, len(nodes))
	for key, e := range nodes {
		if e.ID == "" {
			e.ID = key
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("malformed event in store: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
