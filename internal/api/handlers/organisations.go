package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/api/dto"
	"github.com/hugh/orgspace/internal/api/middleware"
	"github.com/hugh/orgspace/internal/org"
)

type OrganisationHandler struct {
	orgService *org.Service
}

func NewOrganisationHandler(orgService *org.Service) *OrganisationHandler {
	return &OrganisationHandler{orgService: orgService}
}

func (h *OrganisationHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	orgs, err := h.orgService.ListForUser(r.Context(), callerID)
	if err != nil {
		writeInternalError(w)
		return
	}

	dtos := make([]dto.OrganisationDTO, 0, len(orgs))
	for i := range orgs {
		dtos = append(dtos, dto.NewOrganisationDTO(&orgs[i]))
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Status:  "success",
		Message: "Organisations retrieved successfully",
		Data:    dto.OrganisationListData{Organisations: dtos},
	})
}

func (h *OrganisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	clientError := dto.RequestError{
		Status:     "Bad request",
		Message:    "Client error",
		StatusCode: http.StatusBadRequest,
	}

	var req dto.CreateOrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, clientError)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, clientError)
		return
	}

	created, err := h.orgService.Create(r.Context(), callerID, org.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, org.ErrOrgExists) {
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{
				Message: "Organisation already exists",
			})
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Envelope{
		Status:  "success",
		Message: "Organisation created successfully",
		Data:    dto.NewOrganisationDTO(created),
	})
}

// Get serves an organisation to its owner only; absence and lack of
// ownership are reported identically.
func (h *OrganisationHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	o, err := h.orgService.Get(r.Context(), callerID, orgID)
	if err != nil {
		if errors.Is(err, org.ErrNotAuthorized) {
			writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Status:  "success",
		Message: "Organisation retrieved successfully",
		Data:    dto.NewOrganisationDTO(o),
	})
}

// AddUser links a user into an organisation. The route carries no auth;
// kept for compatibility with existing callers that predate the token
// flow.
func (h *OrganisationHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	badRequest := dto.MessageResponse{Message: "Bad request"}

	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequest)
		return
	}

	var req dto.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, badRequest)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequest)
		return
	}

	if err := h.orgService.AddUser(r.Context(), orgID, userID); err != nil {
		switch {
		case errors.Is(err, org.ErrAlreadyMember):
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{
				Message: "User already in organisation",
			})
		case errors.Is(err, org.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, badRequest)
		default:
			writeInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Status:  "success",
		Message: "User added to organisation successfully",
	})
}
