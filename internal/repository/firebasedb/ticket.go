package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type ticketRepository struct {
	client *db.Client
}

func NewTicketRepository(client *db.Client) repository.TicketRepository {
	return &ticketRepository{client: client}
}

func (r *ticketRepository) ref(id string) *db.Ref {
	return r.client.NewRef("tickets/" + id)
}

func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("refusing to store malformed ticket: %w", err)
	}
	path := "tickets/" + t.ID
	logger.StoreCall("SET", path)
	err := r.ref(t.ID).Set(ctx, t)
	logger.StoreResult("SET", path, err)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var t domain.Ticket
	path := "tickets/" + id
	logger.StoreCall("GET", path)
	err := r.ref(id).Get(ctx, &t)
	logger.StoreResult("GET", path, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticket %s: %w", id, err)
	}
	if t.ID == "" {
		// Absent nodes decode to the zero value.
		return nil, repository.ErrNotFound
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("malformed ticket in store: %w", err)
	}
	return &t, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	path := "tickets/" + id
	logger.StoreCall("UPDATE", path, "status", status)
	err := r.ref(id).Update(ctx, map[string]interface{}{"status": string(status)})
	logger.StoreResult("UPDATE", path, err)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", id, err)
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	path := "tickets/" + id
	logger.StoreCall("DELETE", path)
	err := r.ref(id).Delete(ctx)
	logger.StoreResult("DELETE", path, err)
	if err != nil {
		return fmt.Errorf("failed to delete ticket %s: %w", id, err)
	}
	return nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	var nodes map[string]domain.Ticket
	logger.StoreCall("GET", "tickets")
	err := r.client.NewRef("tickets").Get(ctx, &nodes)
	logger.StoreResult("GET", "tickets", err, "count", len(nodes))
	if err != nil {
		return nil, fmt.Errorf("failed to scan tickets: %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(nodes))
	for key, t := range nodes {
		if t.ID == "" {
			t.ID = key
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("malformed ticket in store: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
