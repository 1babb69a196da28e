package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"campushub-backend/internal/service"
)

type TicketHandler struct {
	ticketSvc     service.TicketService
	membershipSvc service.MembershipService
}

func NewTicketHandler(ticketSvc service.TicketService, membershipSvc service.MembershipService) *TicketHandler {
	return &TicketHandler{
		ticketSvc:     ticketSvc,
		membershipSvc: membershipSvc,
	}
}

type createTicketRequest struct {
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates a pending ticket for an event. Works for both
// authenticated users and guests; guests must supply contact details.
func (h *TicketHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventID"]

	var req createTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := service.CreateTicketInput{
		EventID:   eventID,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if claims := claimsFrom(r); claims != nil {
		in.UserID = claims.UserID
		if in.UserEmail == "" {
			in.UserEmail = claims.Email
		}
	}

	t, err := h.ticketSvc.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

// ListByClub is the admin working set: the club's tickets, newest first.
func (h *TicketHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]
	if !h.authorizeBoard(w, r, clubID) {
		return
	}

	tickets, err := h.ticketSvc.ListByClub(r.Context(), clubID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := requireClaims(w, r)
	if claims == nil {
		return
	}

	tickets, err := h.ticketSvc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tickets)
}

type decisionResponse struct {
	Ticket  interface{}    `json:"ticket,omitempty"`
	Report  service.Report `json:"notifications"`
	Message string         `json:"message"`
}

func (h *TicketHandler) Approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !h.authorizeBoard(w, r, vars["clubID"]) {
		return
	}

	t, report, err := h.ticketSvc.Approve(r.Context(), vars["ticketID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, decisionResponse{
		Ticket:  t,
		Report:  report,
		Message: "Billet validé.",
	})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *TicketHandler) Reject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !h.authorizeBoard(w, r, vars["clubID"]) {
		return
	}

	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Reason == "" {
		respondError(w, http.StatusBadRequest, "Un motif de refus est requis.")
		return
	}

	report, err := h.ticketSvc.Reject(r.Context(), vars["ticketID"], req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, decisionResponse{
		Report:  report,
		Message: "Billet refusé et supprimé.",
	})
}

// authorizeBoard enforces the club-admin check: the operator's email must
// appear on the club's board. The lifecycle services themselves do not
// authorize.
func (h *TicketHandler) authorizeBoard(w http.ResponseWriter, r *http.Request, clubID string) bool {
	claims := requireClaims(w, r)
	if claims == nil {
		return false
	}
	ok, err := h.membershipSvc.IsBoardMember(r.Context(), clubID, claims.Email)
	if err != nil {
		respondServiceError(w, err)
		return false
	}
	if !ok {
		respondError(w, http.StatusForbidden, "Accès réservé au bureau du club.")
		return false
	}
	return true
}
