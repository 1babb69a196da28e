package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campushub-backend/internal/domain"
)

func deliveredReport() Report {
	return Report{InApp: OutcomeDelivered, Email: OutcomeDelivered}
}

func TestTicketService_Create(t *testing.T) {
	ticketRepo := new(MockTicketRepo)
	eventRepo := new(MockEventRepo)
	dispatcher := new(MockDispatcher)
	svc := NewTicketService(ticketRepo, eventRepo, dispatcher)

	ctx := context.Background()
	event := &domain.Event{
		ID:       "ev1",
		Name:     "Soirée d'intégration",
		ClubID:   "club1",
		ClubName: "Club Robotique",
	}

	t.Run("Guest Default", func(t *testing.T) {
		eventRepo.On("GetByID", ctx, "ev1").Return(event, nil)
		ticketRepo.On("Create", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil)

		res, err := svc.Create(ctx, CreateTicketInput{
			EventID:   "ev1",
			UserEmail: "guest@test.com",
			FirstName: "Jean",
			LastName:  "Dupont",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.GuestUserID, res.UserID)
		assert.Equal(t, domain.TicketStatusPending, res.Status)
		assert.Equal(t, "Soirée d'intégration", res.EventName)
		assert.Equal(t, "club1", res.ClubID)
		assert.True(t, res.IsGuest())
	})

	t.Run("Event Not Found", func(t *testing.T) {
		eventRepo.ExpectedCalls = nil
		eventRepo.On("GetByID", ctx, "ev1").Return(nil, errors.New("not found"))

		res, err := svc.Create(ctx, CreateTicketInput{EventID: "ev1"})
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestTicketService_Approve(t *testing.T) {
	ctx := context.Background()

	pending := func() *domain.Ticket {
		return &domain.Ticket{
			ID:        "t1",
			EventID:   "ev1",
			EventName: "Hackathon 2026",
			ClubID:    "club1",
			ClubName:  "Club Info",
			UserID:    "u1",
			UserEmail: "u1@test.com",
			UserName:  "Alice",
			Status:    domain.TicketStatusPending,
			CreatedAt: 1000,
		}
	}

	t.Run("Success", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		ticketRepo.On("GetByID", ctx, "t1").Return(pending(), nil)
		ticketRepo.On("UpdateStatus", ctx, "t1", domain.TicketStatusValid).Return(nil)

		var captured Delivery
		dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("service.Delivery")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(Delivery) }).
			Return(deliveredReport())

		res, report, err := svc.Approve(ctx, "t1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TicketStatusValid, res.Status)
		assert.Equal(t, OutcomeDelivered, report.InApp)
		assert.Equal(t, OutcomeDelivered, report.Email)

		// Both channels carry payloads, and the email names the event.
		assert.NotNil(t, captured.InApp)
		assert.NotNil(t, captured.Mail)
		assert.Equal(t, "u1", captured.UserID)
		assert.Contains(t, captured.Mail.Subject, "Hackathon 2026")
		assert.Equal(t, domain.NotificationTypeSystem, captured.InApp.Type)
		assert.Contains(t, captured.InApp.Message, "Hackathon 2026")
	})

	t.Run("Already Valid Is A NoOp", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		valid := pending()
		valid.Status = domain.TicketStatusValid
		ticketRepo.On("GetByID", ctx, "t1").Return(valid, nil)

		res, report, err := svc.Approve(ctx, "t1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TicketStatusValid, res.Status)
		assert.Equal(t, OutcomeSkipped, report.InApp)
		assert.Equal(t, OutcomeSkipped, report.Email)

		ticketRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("No Notification When Mutation Fails", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		ticketRepo.On("GetByID", ctx, "t1").Return(pending(), nil)
		ticketRepo.On("UpdateStatus", ctx, "t1", domain.TicketStatusValid).Return(errors.New("write failed"))

		res, _, err := svc.Approve(ctx, "t1")
		assert.Error(t, err)
		assert.Nil(t, res)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		ticketRepo.On("GetByID", ctx, "missing").Return(nil, errors.New("not found"))

		_, _, err := svc.Approve(ctx, "missing")
		assert.Error(t, err)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})
}

func TestTicketService_Reject(t *testing.T) {
	ctx := context.Background()

	ticket := &domain.Ticket{
		ID:        "t1",
		EventID:   "ev1",
		EventName: "Gala de fin d'année",
		ClubID:    "club1",
		UserID:    "u1",
		UserEmail: "u1@test.com",
		UserName:  "Alice",
		Status:    domain.TicketStatusPending,
		CreatedAt: 1000,
	}

	t.Run("Deletes And Emails The Reason", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		ticketRepo.On("GetByID", ctx, "t1").Return(ticket, nil)
		ticketRepo.On("Delete", ctx, "t1").Return(nil)

		var captured Delivery
		dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("service.Delivery")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(Delivery) }).
			Return(Report{InApp: OutcomeSkipped, Email: OutcomeDelivered})

		report, err := svc.Reject(ctx, "t1", "Capacité atteinte")
		assert.NoError(t, err)
		assert.Equal(t, OutcomeDelivered, report.Email)

		// Rejection is email only, and the reason travels in the body.
		assert.Nil(t, captured.InApp)
		assert.NotNil(t, captured.Mail)
		assert.Contains(t, captured.Mail.HTML, "Capacité atteinte")
	})

	t.Run("No Email When Delete Fails", func(t *testing.T) {
		ticketRepo := new(MockTicketRepo)
		dispatcher := new(MockDispatcher)
		svc := NewTicketService(ticketRepo, new(MockEventRepo), dispatcher)

		ticketRepo.On("GetByID", ctx, "t1").Return(ticket, nil)
		ticketRepo.On("Delete", ctx, "t1").Return(errors.New("write failed"))

		_, err := svc.Reject(ctx, "t1", "Capacité atteinte")
		assert.Error(t, err)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})
}

func TestTicketService_ListByClub(t *testing.T) {
	ticketRepo := new(MockTicketRepo)
	svc := NewTicketService(ticketRepo, new(MockEventRepo), new(MockDispatcher))

	ctx := context.Background()
	ticketRepo.On("ListAll", ctx).Return([]domain.Ticket{
		{ID: "a", ClubID: "club1", CreatedAt: 100},
		{ID: "b", ClubID: "club2", CreatedAt: 200},
		{ID: "c", ClubID: "club1", CreatedAt: 300},
	}, nil)

	tickets, err := svc.ListByClub(ctx, "club1")
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	// Newest first.
	assert.Equal(t, "c", tickets[0].ID)
	assert.Equal(t, "a", tickets[1].ID)
}
