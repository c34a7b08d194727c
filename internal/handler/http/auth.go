package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// AuthHandler handles the mock authentication endpoints.
type AuthHandler struct {
	log         zerolog.Logger
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(log zerolog.Logger, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: authService,
	}
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if req.Email == "" {
		response.BadRequest(w, "email is required")
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, session)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
