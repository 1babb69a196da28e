package repository

import (
	"context"
	"errors"

	"campushub-backend/internal/domain"
)

// ErrNotFound is returned when a document is absent from the store.
var ErrNotFound = errors.New("not found")

type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	// UpdateStatus flips the status field only; no other field changes.
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	Delete(ctx context.Context, id string) error
	// ListAll returns the full ticket collection. Club filtering happens
	// client-side (known scale limitation of the admin read path).
	ListAll(ctx context.Context) ([]domain.Ticket, error)
}

type ClubRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)

	// Join requests (club-partitioned sub-collection)
	CreateJoinRequest(ctx context.Context, clubID string, req *domain.JoinRequest) error
	GetJoinRequest(ctx context.Context, clubID, requestID string) (*domain.JoinRequest, error)
	ListJoinRequests(ctx context.Context, clubID string) ([]domain.JoinRequest, error)
	DeleteJoinRequest(ctx context.Context, clubID, requestID string) error
	// ConvertJoinRequest atomically appends member to the club's member
	// list and removes the request, in a single store transaction. When
	// the request's email is already on the member list the request is
	// removed and no member is appended; the returned bool reports
	// whether a member was actually added.
	ConvertJoinRequest(ctx context.Context, clubID, requestID string, member domain.Member) (bool, error)

	// Members
	ListMembers(ctx context.Context, clubID string) ([]domain.Member, error)
	RemoveMember(ctx context.Context, clubID, memberID string) error

	// Posts
	CreatePost(ctx context.Context, clubID string, p *domain.Post) error
	ListPosts(ctx context.Context, clubID string) ([]domain.Post, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

type NotificationRepository interface {
	CreatePrivate(ctx context.Context, userID string, n *domain.Notification) error
	CreateGlobal(ctx context.Context, n *domain.Notification) error
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	// PurgeRead deletes read private notifications created before the
	// cutoff (epoch millis). Returns the number of deleted records.
	PurgeRead(ctx context.Context, userID string, cutoff int64) (int, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Resource, error)
}
