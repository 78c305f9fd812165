package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris7683/fit-and-fix/internal/domain"
	"github.com/chris7683/fit-and-fix/internal/service"
)

// UserHandler handles user-resource HTTP requests.
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// HandleProfile returns the authenticated user's profile.
// GET /user/profile
// Response: 200 {"user": {...}}
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized)
		return
	}

	user, err := h.auth.Profile(r.Context(), identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeUserNotFound)
			return
		}
		slog.Error("get profile", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}
