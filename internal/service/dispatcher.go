package service

import (
	"context"
	"time"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
)

// ChannelOutcome is the result of one delivery channel. Failures are
// terminal: the dispatcher never retries and never propagates them.
type ChannelOutcome string

const (
	OutcomeDelivered ChannelOutcome = "delivered"
	OutcomeSkipped   ChannelOutcome = "skipped"
	OutcomeFailed    ChannelOutcome = "failed"
)

// EmailMessage is a rendered transactional email.
type EmailMessage struct {
	Subject string
	HTML    string
}

// Delivery describes one fan-out: who the subject is and what each
// channel should carry. A nil channel payload means the channel is not
// used for this transition (rejections, for example, are email-only).
type Delivery struct {
	UserID   string
	UserName string
	// Email is the denormalized address on the record; empty or "N/A"
	// means the dispatcher must resolve it through the user profile.
	Email string
	InApp *domain.Notification
	Mail  *EmailMessage
}

// Report carries the per-channel outcomes of one dispatch so callers and
// tests can observe side-effect results separately from the primary
// transition result.
type Report struct {
	InApp ChannelOutcome
	Email ChannelOutcome
}

// Dispatcher fans a lifecycle transition out to the in-app and email
// channels. Both channels are individually failure-isolated: an error in
// either is logged and reflected in the report, nothing more. Callers must
// only dispatch after the primary mutation has been durably applied.
type Dispatcher interface {
	Dispatch(ctx context.Context, d Delivery) Report
	// DispatchGlobal writes an announcement visible to all users.
	DispatchGlobal(ctx context.Context, n *domain.Notification) ChannelOutcome
}

type dispatcher struct {
	noteRepo repository.NotificationRepository
	userRepo repository.UserRepository
	emailSvc EmailService
	timeout  time.Duration
}

// DefaultDispatchTimeout bounds a hung channel call. The legacy client
// fired notifications on a detached promise with no timeout at all; a hard
// deadline keeps the "never block the operator" property without losing
// the outcome report.
const DefaultDispatchTimeout = 10 * time.Second

func NewDispatcher(noteRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc EmailService) Dispatcher {
	return &dispatcher{
		noteRepo: noteRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
		timeout:  DefaultDispatchTimeout,
	}
}

func (s *dispatcher) Dispatch(ctx context.Context, d Delivery) Report {
	// Detach from the request so an operator closing the page cannot
	// cancel a delivery of a transition that already persisted.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	report := Report{InApp: OutcomeSkipped, Email: OutcomeSkipped}

	if d.InApp != nil {
		report.InApp = s.deliverInApp(ctx, d)
	}
	if d.Mail != nil {
		report.Email = s.deliverEmail(ctx, d)
	}
	return report
}

func (s *dispatcher) deliverInApp(ctx context.Context, d Delivery) ChannelOutcome {
	// Guests have no notification inbox.
	if d.UserID == "" || d.UserID == domain.GuestUserID {
		return OutcomeSkipped
	}
	if err := s.noteRepo.CreatePrivate(ctx, d.UserID, d.InApp); err != nil {
		logger.Error("in-app notification delivery failed", "user_id", d.UserID, "title", d.InApp.Title, "error", err)
		return OutcomeFailed
	}
	return OutcomeDelivered
}

func (s *dispatcher) deliverEmail(ctx context.Context, d Delivery) ChannelOutcome {
	to := s.resolveAddress(ctx, d)
	if to == "" {
		// Unresolvable address is a skip, not an error.
		return OutcomeSkipped
	}
	if err := s.emailSvc.Send(ctx, to, d.UserName, d.Mail.Subject, d.Mail.HTML); err != nil {
		logger.Error("email delivery failed", "to", to, "subject", d.Mail.Subject, "error", err)
		return OutcomeFailed
	}
	return OutcomeDelivered
}

// resolveAddress prefers the denormalized address on the record and falls
// back to the user profile when it is absent or the legacy "N/A" filler.
func (s *dispatcher) resolveAddress(ctx context.Context, d Delivery) string {
	if d.Email != "" && d.Email != "N/A" {
		return d.Email
	}
	if d.UserID == "" || d.UserID == domain.GuestUserID {
		return ""
	}
	u, err := s.userRepo.GetByID(ctx, d.UserID)
	if err != nil {
		logger.Warn("email address lookup failed, skipping email channel", "user_id", d.UserID, "error", err)
		return ""
	}
	if !u.HasEmail() {
		return ""
	}
	return u.Email
}

func (s *dispatcher) DispatchGlobal(ctx context.Context, n *domain.Notification) ChannelOutcome {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.noteRepo.CreateGlobal(ctx, n); err != nil {
		logger.Error("global notification delivery failed", "title", n.Title, "error", err)
		return OutcomeFailed
	}
	return OutcomeDelivered
}
