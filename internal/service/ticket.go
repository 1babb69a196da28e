package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

type ticketService struct {
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
	dispatcher Dispatcher
}

func NewTicketService(ticketRepo repository.TicketRepository, eventRepo repository.EventRepository, dispatcher Dispatcher) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		dispatcher: dispatcher,
	}
}

func (s *ticketService) Create(ctx context.Context, in CreateTicketInput) (*domain.Ticket, error) {
	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	userID := in.UserID
	if userID == "" {
		userID = domain.GuestUserID
	}

	t := &domain.Ticket{
		ID:        uuid.NewString(),
		EventID:   event.ID,
		EventName: event.Name,
		ClubID:    event.ClubID,
		ClubName:  event.ClubName,
		UserID:    userID,
		UserEmail: in.UserEmail,
		UserName:  in.UserName,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Status:    domain.TicketStatusPending,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.ticketRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	logger.Info("ticket created", "ticket_id", t.ID, "event_id", t.EventID, "user_id", t.UserID)
	return t, nil
}

func (s *ticketService) Get(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, ticketID)
}

func (s *ticketService) Approve(ctx context.Context, ticketID string) (*domain.Ticket, Report, error) {
	t, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, Report{}, err
	}

	// valid is terminal; re-approving must not touch the store or emit a
	// duplicate notification.
	if t.Status == domain.TicketStatusValid {
		return t, Report{InApp: OutcomeSkipped, Email: OutcomeSkipped}, nil
	}

	if err := s.ticketRepo.UpdateStatus(ctx, ticketID, domain.TicketStatusValid); err != nil {
		// Mutation failed: the holder must not be notified of a
		// transition that never persisted.
		return nil, Report{}, err
	}
	t.Status = domain.TicketStatusValid

	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID:   t.UserID,
		UserName: t.HolderName(),
		Email:    t.UserEmail,
		InApp:    ticketValidatedNotification(t),
		Mail:     ticketValidatedEmail(t),
	})
	logger.Info("ticket approved", "ticket_id", t.ID, "in_app", report.InApp, "email", report.Email)
	return t, report, nil
}

func (s *ticketService) Reject(ctx context.Context, ticketID, reason string) (Report, error) {
	// Read before delete: the holder's identity is needed for the email
	// and the record is about to disappear.
	t, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return Report{}, err
	}

	if err := s.ticketRepo.Delete(ctx, ticketID); err != nil {
		return Report{}, err
	}

	report := s.dispatcher.Dispatch(ctx, Delivery{
		UserID:   t.UserID,
		UserName: t.HolderName(),
		Email:    t.UserEmail,
		Mail:     ticketRejectedEmail(t, reason),
	})
	logger.Info("ticket rejected", "ticket_id", ticketID, "email", report.Email)
	return report, nil
}

func (s *ticketService) ListByClub(ctx context.Context, clubID string) ([]domain.Ticket, error) {
	all, err := s.ticketRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(all))
	for _, t := range all {
		if t.ClubID == clubID {
			tickets = append(tickets, t)
		}
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt > tickets[j].CreatedAt
	})
	return tickets, nil
}

func (s *ticketService) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	all, err := s.ticketRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			tickets = append(tickets, t)
		}
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt > tickets[j].CreatedAt
	})
	return tickets, nil
}
