package handler

import (
	"net/http"

	"github.com/chris7683/fit-and-fix/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tokens *service.TokenService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(auth)

	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /auth/logout", authHandler.HandleLogout)

	mux.Handle("GET /user/profile", RequireAuth(tokens, http.HandlerFunc(userHandler.HandleProfile)))

	mux.HandleFunc("GET /healthz", HandleHealthz)
}
