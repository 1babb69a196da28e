package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/service"
)

type ResourceHandler struct {
	resourceSvc service.ResourceService
}

func NewResourceHandler(resourceSvc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceSvc: resourceSvc}
}

type resourceRequest struct {
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Subject  string `json:"subject"`
	Filiere  string `json:"filiere"`
	Semester string `json:"semester"`
	FileURL  string `json:"fileUrl"`
}

func (h *ResourceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := requireClaims(w, r)
	if claims == nil {
		return
	}

	var req resourceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" || req.FileURL == "" {
		respondError(w, http.StatusBadRequest, "Titre et fichier requis.")
		return
	}
	kind := domain.ResourceKind(req.Kind)
	if kind != domain.ResourceKindCourse && kind != domain.ResourceKindExam {
		respondError(w, http.StatusBadRequest, "Type de ressource invalide.")
		return
	}

	res, err := h.resourceSvc.Submit(r.Context(), service.ResourceInput{
		Title:         req.Title,
		Kind:          kind,
		Subject:       req.Subject,
		Filiere:       req.Filiere,
		Semester:      req.Semester,
		FileURL:       req.FileURL,
		UploaderID:    claims.UserID,
		UploaderEmail: claims.Email,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceSvc.ListApproved(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

// ListPending is the moderation dashboard working set.
func (h *ResourceHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	if requirePlatformAdmin(w, r) == nil {
		return
	}

	resources, err := h.resourceSvc.ListPending(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

type resourceDecisionResponse struct {
	Resource interface{}    `json:"resource,omitempty"`
	Report   service.Report `json:"notifications"`
	Message  string         `json:"message"`
}

func (h *ResourceHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if requirePlatformAdmin(w, r) == nil {
		return
	}

	res, report, err := h.resourceSvc.Approve(r.Context(), mux.Vars(r)["resourceID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resourceDecisionResponse{
		Resource: res,
		Report:   report,
		Message:  "Ressource approuvée et publiée.",
	})
}

func (h *ResourceHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if requirePlatformAdmin(w, r) == nil {
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

	report, err := h.resourceSvc.Reject(r.Context(), mux.Vars(r)["resourceID"], req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resourceDecisionResponse{
		Report:  report,
		Message: "Ressource refusée et supprimée.",
	})
}
