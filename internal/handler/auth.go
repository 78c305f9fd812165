package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris7683/fit-and-fix/internal/domain"
	"github.com/chris7683/fit-and-fix/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /auth/register
// Response: 201 {"message":..., "user": {...}, "token": "..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		PhoneNumber     string `json:"phone_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		ProfileImageURL string `json:"profile_image_url"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput)
		return
	}

	user, token, err := h.auth.Register(r.Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			writeErrorMessage(w, http.StatusBadRequest, codeInvalidInput, "Passwords do not match")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, codeInvalidInput)
		case errors.Is(err, domain.ErrEmailExists):
			writeError(w, http.StatusConflict, codeEmailExists)
		case errors.Is(err, domain.ErrWeakPassword):
			writeErrorMessage(w, http.StatusBadRequest, codeWeakPassword, "Password must be at least 8 characters")
		default:
			slog.Error("register user", "error", err)
			writeError(w, http.StatusInternalServerError, codeInternal)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered",
		"user":    toUserDTO(user),
		"token":   token,
	})
}

// HandleLogin processes a JSON login request.
// POST /auth/login
// Response: 200 {"message":..., "user": {...}, "token": "..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, codeInvalidInput)
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, codeInvalidCredentials)
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, codeInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    toUserDTO(user),
		"token":   token,
	})
}

// HandleLogout acknowledges a logout. Tokens are stateless, so there is no
// server-side session to invalidate; this always succeeds.
// POST /auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
