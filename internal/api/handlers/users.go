package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/api/dto"
	"github.com/hugh/orgspace/internal/api/middleware"
	"github.com/hugh/orgspace/internal/auth"
)

type UserHandler struct {
	authService *auth.Service
}

func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get serves a user profile. Callers always see themselves; anyone else
// only through a shared organisation.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		return
	}

	user, err := h.authService.FetchUser(r.Context(), callerID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		case errors.Is(err, auth.ErrNotAuthorized):
			writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		default:
			writeInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Status:  "success",
		Message: "User retrieved successfully",
		Data:    dto.NewUserDTO(user),
	})
}
