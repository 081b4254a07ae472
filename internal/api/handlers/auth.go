package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hugh/orgspace/internal/api/dto"
	"github.com/hugh/orgspace/internal/auth"
)

type AuthHandler struct {
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrors{
			Errors: []dto.FieldError{{Message: "No data provided"}},
		})
		return
	}

	if fieldErr := req.Validate(); fieldErr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrors{
			Errors: []dto.FieldError{*fieldErr},
		})
		return
	}

	resp, err := h.authService.Register(r.Context(), auth.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		// Which field conflicted is not revealed.
		if errors.Is(err, auth.ErrUserExists) {
			writeJSON(w, http.StatusBadRequest, dto.RequestError{
				Status:     "Bad request",
				Message:    "Registration failed",
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Envelope{
		Status:  "success",
		Message: "Registration successful",
		Data: dto.AuthData{
			AccessToken: resp.Token,
			User:        dto.NewUserDTO(resp.User),
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	badRequest := dto.RequestError{
		Status:     "Bad request",
		Message:    "authentication failed",
		StatusCode: http.StatusBadRequest,
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, badRequest)
		return
	}

	// Absent email and absent password are not told apart.
	if !req.Complete() {
		writeJSON(w, http.StatusBadRequest, badRequest)
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		// Unknown email and wrong password share one status and body.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, dto.RequestError{
				Status:     "Bad request",
				Message:    "authentication failed",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Status:  "success",
		Message: "Login successful",
		Data: dto.AuthData{
			AccessToken: resp.Token,
			User:        dto.NewUserDTO(resp.User),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{
		Message: "Internal server error",
	})
}
