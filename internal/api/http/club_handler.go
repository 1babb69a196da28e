package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"campushub-backend/internal/service"
)

type ClubHandler struct {
	clubSvc       service.ClubService
	membershipSvc service.MembershipService
}

func NewClubHandler(clubSvc service.ClubService, membershipSvc service.MembershipService) *ClubHandler {
	return &ClubHandler{
		clubSvc:       clubSvc,
		membershipSvc: membershipSvc,
	}
}

func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubSvc.ListClubs(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubSvc.GetClub(r.Context(), mux.Vars(r)["clubID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, club)
}

type joinRequest struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Reason  string            `json:"reason"`
	Answers map[string]string `json:"answers"`
}

// SubmitJoin is the public join form. Authenticated applicants are linked
// to their account so approval can reuse their user id.
func (h *ClubHandler) SubmitJoin(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]

	var req joinRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Nom et email requis.")
		return
	}

	in := service.JoinRequestInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Reason:  req.Reason,
		Answers: req.Answers,
	}
	if claims := claimsFrom(r); claims != nil {
		in.UserID = claims.UserID
	}

	created, err := h.membershipSvc.SubmitJoinRequest(r.Context(), clubID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ClubHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]
	if !h.authorizeBoard(w, r, clubID) {
		return
	}

	reqs, err := h.membershipSvc.ListJoinRequests(r.Context(), clubID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reqs)
}

type joinDecisionResponse struct {
	Member  interface{}    `json:"member,omitempty"`
	Report  service.Report `json:"notifications"`
	Message string         `json:"message"`
}

func (h *ClubHandler) ApproveJoinRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !h.authorizeBoard(w, r, vars["clubID"]) {
		return
	}

	member, report, err := h.membershipSvc.ApproveJoinRequest(r.Context(), vars["clubID"], vars["requestID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	msg := "Demande acceptée, membre ajouté."
	if member == nil {
		msg = "Candidat déjà membre, demande supprimée."
	}
	respondJSON(w, http.StatusOK, joinDecisionResponse{
		Member:  member,
		Report:  report,
		Message: msg,
	})
}

func (h *ClubHandler) RejectJoinRequest(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.membershipSvc.RejectJoinRequest(r.Context(), vars["clubID"], vars["requestID"], req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, joinDecisionResponse{
		Report:  report,
		Message: "Demande refusée et supprimée.",
	})
}

func (h *ClubHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]
	if !h.authorizeBoard(w, r, clubID) {
		return
	}

	members, err := h.membershipSvc.ListMembers(r.Context(), clubID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *ClubHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !h.authorizeBoard(w, r, vars["clubID"]) {
		return
	}

	if err := h.membershipSvc.RemoveMember(r.Context(), vars["clubID"], vars["memberID"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type eventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        int64  `json:"date"`
	Capacity    int    `json:"capacity"`
}

func (h *ClubHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]
	if !h.authorizeBoard(w, r, clubID) {
		return
	}

	var req eventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Le nom de l'événement est requis.")
		return
	}

	e, err := h.clubSvc.CreateEvent(r.Context(), clubID, service.EventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Capacity:    req.Capacity,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}

func (h *ClubHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.clubSvc.ListEvents(r.Context(), mux.Vars(r)["clubID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *ClubHandler) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.clubSvc.ListAllEvents(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *ClubHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.clubSvc.GetEvent(r.Context(), mux.Vars(r)["eventID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

type postRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
}

func (h *ClubHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]
	claims := requireClaims(w, r)
	if claims == nil {
		return
	}
	if !h.authorizeBoard(w, r, clubID) {
		return
	}

	var req postRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "Le titre est requis.")
		return
	}

	p, err := h.clubSvc.CreatePost(r.Context(), clubID, service.PostInput{
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		AuthorEmail: claims.Email,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *ClubHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.clubSvc.ListPosts(r.Context(), mux.Vars(r)["clubID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *ClubHandler) authorizeBoard(w http.ResponseWriter, r *http.Request, clubID string) bool {
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
