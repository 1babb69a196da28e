package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"campushub-backend/internal/security"
	"campushub-backend/internal/service"
)

// Handlers groups the HTTP handlers mounted on the router.
type Handlers struct {
	Auth          *AuthHandler
	Clubs         *ClubHandler
	Tickets       *TicketHandler
	Notifications *NotificationHandler
	Resources     *ResourceHandler
}

func NewHandlers(
	authSvc service.AuthService,
	clubSvc service.ClubService,
	membershipSvc service.MembershipService,
	ticketSvc service.TicketService,
	noteSvc service.NotificationService,
	resourceSvc service.ResourceService,
) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(authSvc),
		Clubs:         NewClubHandler(clubSvc, membershipSvc),
		Tickets:       NewTicketHandler(ticketSvc, membershipSvc),
		Notifications: NewNotificationHandler(noteSvc),
		Resources:     NewResourceHandler(resourceSvc),
	}
}

// NewRouter builds the full API route table under /api/v1.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(NewAuthMiddleware(tokens).Handler)

	r := root.PathPrefix("/api/v1").Subrouter()

	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	r.HandleFunc("/clubs", h.Clubs.List).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}", h.Clubs.Get).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/join-requests", h.Clubs.SubmitJoin).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/join-requests", h.Clubs.ListJoinRequests).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/join-requests/{requestID}/approve", h.Clubs.ApproveJoinRequest).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/join-requests/{requestID}/reject", h.Clubs.RejectJoinRequest).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/members", h.Clubs.ListMembers).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/members/{memberID}", h.Clubs.RemoveMember).Methods(http.MethodDelete)
	r.HandleFunc("/clubs/{clubID}/posts", h.Clubs.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/posts", h.Clubs.ListPosts).Methods(http.MethodGet)

	r.HandleFunc("/events", h.Clubs.ListAllEvents).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/events", h.Clubs.CreateEvent).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/events", h.Clubs.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/events/{eventID}", h.Clubs.GetEvent).Methods(http.MethodGet)

	r.HandleFunc("/events/{eventID}/tickets", h.Tickets.Register).Methods(http.MethodPost)
	r.HandleFunc("/tickets/mine", h.Tickets.ListMine).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/tickets", h.Tickets.ListByClub).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{clubID}/tickets/{ticketID}/approve", h.Tickets.Approve).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{clubID}/tickets/{ticketID}/reject", h.Tickets.Reject).Methods(http.MethodPost)

	r.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{notificationID}/read", h.Notifications.MarkRead).Methods(http.MethodPost)

	r.HandleFunc("/resources", h.Resources.ListApproved).Methods(http.MethodGet)
	r.HandleFunc("/resources", h.Resources.Submit).Methods(http.MethodPost)
	r.HandleFunc("/admin/resources/pending", h.Resources.ListPending).Methods(http.MethodGet)
	r.HandleFunc("/admin/resources/{resourceID}/approve", h.Resources.Approve).Methods(http.MethodPost)
	r.HandleFunc("/admin/resources/{resourceID}/reject", h.Resources.Reject).Methods(http.MethodPost)

	return root
}
