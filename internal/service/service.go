package service

import (
	"context"
	"errors"

	"campushub-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	// Login verifies credentials and returns access and refresh tokens.
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// CreateTicketInput is the registration form payload. UserID is empty or
// "guest" for unauthenticated visitors.
type CreateTicketInput struct {
	EventID   string
	UserID    string
	UserEmail string
	UserName  string
	FirstName string
	LastName  string
}

type TicketService interface {
	Create(ctx context.Context, in CreateTicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, ticketID string) (*domain.Ticket, error)
	// Approve flips a pending ticket to valid and dispatches a best-effort
	// notification. Approving an already-valid ticket is a no-op: the
	// store is not touched and nothing is dispatched.
	Approve(ctx context.Context, ticketID string) (*domain.Ticket, Report, error)
	// Reject deletes the ticket and emails the holder the reason. No
	// in-app notification is sent for rejections.
	Reject(ctx context.Context, ticketID, reason string) (Report, error)
	// ListByClub returns the club's tickets, newest first. The underlying
	// read is a full collection scan filtered here.
	ListByClub(ctx context.Context, clubID string) ([]domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
}

// JoinRequestInput is the club join form payload. Answers is keyed by the
// club's custom question ids.
type JoinRequestInput struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Reason  string
	Answers map[string]string
}

type MembershipService interface {
	SubmitJoinRequest(ctx context.Context, clubID string, in JoinRequestInput) (*domain.JoinRequest, error)
	ListJoinRequests(ctx context.Context, clubID string) ([]domain.JoinRequest, error)
	// ApproveJoinRequest converts the request into a member and removes it
	// in one store transaction. A request whose email is already on the
	// member list is removed without creating a duplicate; that path is a
	// soft success and returns a nil member.
	ApproveJoinRequest(ctx context.Context, clubID, requestID string) (*domain.Member, Report, error)
	RejectJoinRequest(ctx context.Context, clubID, requestID, reason string) (Report, error)
	ListMembers(ctx context.Context, clubID string) ([]domain.Member, error)
	RemoveMember(ctx context.Context, clubID, memberID string) error
	// IsBoardMember is the admin authorization check performed by the
	// HTTP layer, not by the lifecycle operations themselves.
	IsBoardMember(ctx context.Context, clubID, email string) (bool, error)
}

type EventInput struct {
	Name        string
	Description string
	Location    string
	Date        int64
	Capacity    int
}

type PostInput struct {
	Title       string
	Body        string
	ImageURL    string
	AuthorEmail string
}

type ClubService interface {
	ListClubs(ctx context.Context) ([]domain.Club, error)
	GetClub(ctx context.Context, clubID string) (*domain.Club, error)
	CreateEvent(ctx context.Context, clubID string, in EventInput) (*domain.Event, error)
	ListEvents(ctx context.Context, clubID string) ([]domain.Event, error)
	ListAllEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	CreatePost(ctx context.Context, clubID string, in PostInput) (*domain.Post, error)
	ListPosts(ctx context.Context, clubID string) ([]domain.Post, error)
}

type ResourceInput struct {
	Title         string
	Kind          domain.ResourceKind
	Subject       string
	Filiere       string
	Semester      string
	FileURL       string
	UploaderID    string
	UploaderEmail string
}

type ResourceService interface {
	Submit(ctx context.Context, in ResourceInput) (*domain.Resource, error)
	ListApproved(ctx context.Context) ([]domain.Resource, error)
	ListPending(ctx context.Context) ([]domain.Resource, error)
	// Approve publishes the resource: status flip, private notification to
	// the uploader, and a global RESOURCE announcement.
	Approve(ctx context.Context, resourceID string) (*domain.Resource, Report, error)
	Reject(ctx context.Context, resourceID, reason string) (Report, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// EmailService delivers transactional email. Implementations are
// best-effort senders; retry policy is the caller's concern (and the
// dispatcher deliberately has none).
type EmailService interface {
	Send(ctx context.Context, toEmail, toName, subject, html string) error
}
