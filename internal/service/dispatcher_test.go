package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campushub-backend/internal/domain"
)

func systemNote(title string) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationTypeSystem,
		Title:    title,
		Message:  "message",
		Priority: domain.NotificationPriorityNormal,
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Both Channels Delivered", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		noteRepo.On("CreatePrivate", mock.Anything, "u1", mock.AnythingOfType("*domain.Notification")).Return(nil)
		emailSvc.On("Send", mock.Anything, "u1@test.com", "Alice", "Sujet", "<p>corps</p>").Return(nil)

		report := d.Dispatch(ctx, Delivery{
			UserID:   "u1",
			UserName: "Alice",
			Email:    "u1@test.com",
			InApp:    systemNote("Billet validé"),
			Mail:     &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		})
		assert.Equal(t, OutcomeDelivered, report.InApp)
		assert.Equal(t, OutcomeDelivered, report.Email)
	})

	t.Run("Guest Skips InApp But Still Gets Email", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		emailSvc.On("Send", mock.Anything, "guest@test.com", "Jean", "Sujet", mock.Anything).Return(nil)

		report := d.Dispatch(ctx, Delivery{
			UserID:   domain.GuestUserID,
			UserName: "Jean",
			Email:    "guest@test.com",
			InApp:    systemNote("Billet validé"),
			Mail:     &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		})
		assert.Equal(t, OutcomeSkipped, report.InApp)
		assert.Equal(t, OutcomeDelivered, report.Email)
		noteRepo.AssertNotCalled(t, "CreatePrivate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Email Failure Does Not Affect InApp", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		noteRepo.On("CreatePrivate", mock.Anything, "u1", mock.Anything).Return(nil)
		emailSvc.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("sendgrid 503"))

		report := d.Dispatch(ctx, Delivery{
			UserID: "u1",
			Email:  "u1@test.com",
			InApp:  systemNote("Billet validé"),
			Mail:   &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		})
		assert.Equal(t, OutcomeDelivered, report.InApp)
		assert.Equal(t, OutcomeFailed, report.Email)
	})

	t.Run("InApp Failure Does Not Affect Email", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		noteRepo.On("CreatePrivate", mock.Anything, "u1", mock.Anything).Return(errors.New("write failed"))
		emailSvc.On("Send", mock.Anything, "u1@test.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		report := d.Dispatch(ctx, Delivery{
			UserID: "u1",
			Email:  "u1@test.com",
			InApp:  systemNote("Billet validé"),
			Mail:   &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		})
		assert.Equal(t, OutcomeFailed, report.InApp)
		assert.Equal(t, OutcomeDelivered, report.Email)
	})

	t.Run("Nil Payloads Are Skipped", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		report := d.Dispatch(ctx, Delivery{UserID: "u1", Email: "u1@test.com"})
		assert.Equal(t, OutcomeSkipped, report.InApp)
		assert.Equal(t, OutcomeSkipped, report.Email)
		noteRepo.AssertNotCalled(t, "CreatePrivate", mock.Anything, mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDispatcher_AddressResolution(t *testing.T) {
	ctx := context.Background()
	mailOnly := func(email string) Delivery {
		return Delivery{
			UserID: "u1",
			Email:  email,
			Mail:   &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		}
	}

	t.Run("Falls Back To Profile When Denormalized Address Is NA", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "profile@test.com"}, nil)
		emailSvc.On("Send", mock.Anything, "profile@test.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		report := d.Dispatch(ctx, mailOnly("N/A"))
		assert.Equal(t, OutcomeDelivered, report.Email)
	})

	t.Run("Skips When Profile Has No Usable Address", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "N/A"}, nil)

		report := d.Dispatch(ctx, mailOnly(""))
		assert.Equal(t, OutcomeSkipped, report.Email)
		emailSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Skips When Profile Lookup Fails", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		userRepo.On("GetByID", mock.Anything, "u1").Return(nil, errors.New("not found"))

		report := d.Dispatch(ctx, mailOnly(""))
		assert.Equal(t, OutcomeSkipped, report.Email)
	})

	t.Run("Guest Without Address Is Skipped Without Lookup", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		d := NewDispatcher(noteRepo, userRepo, emailSvc)

		report := d.Dispatch(ctx, Delivery{
			UserID: domain.GuestUserID,
			Mail:   &EmailMessage{Subject: "Sujet", HTML: "<p>corps</p>"},
		})
		assert.Equal(t, OutcomeSkipped, report.Email)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDispatcher_DispatchGlobal(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivered", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		d := NewDispatcher(noteRepo, new(MockUserRepo), new(MockEmailService))

		noteRepo.On("CreateGlobal", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

		outcome := d.DispatchGlobal(ctx, systemNote("Nouvelle ressource disponible"))
		assert.Equal(t, OutcomeDelivered, outcome)
	})

	t.Run("Failed", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		d := NewDispatcher(noteRepo, new(MockUserRepo), new(MockEmailService))

		noteRepo.On("CreateGlobal", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		outcome := d.DispatchGlobal(ctx, systemNote("Nouvelle ressource disponible"))
		assert.Equal(t, OutcomeFailed, outcome)
	})
}
